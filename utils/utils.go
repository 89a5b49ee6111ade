package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"
	"tms/config"

	"github.com/go-resty/resty/v2"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// SendOTPToMobile delivers an OTP through the SMS gateway.
func SendOTPToMobile(mobile, otp string) error {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization":    config.AppConfig.SmsApiKey,
			"route":            "dlt",
			"sender_id":        "TRNCEL",
			"variables_values": fmt.Sprintf("%s|%d", otp, config.AppConfig.OtpTTLMinutes),
			"flash":            "0",
			"numbers":          mobile,
		}).
		Get(config.AppConfig.SmsApiUrl)
	if err != nil {
		log.Printf("Error while sending OTP: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode())
	}

	log.Println("OTP sent successfully to", mobile)
	return nil
}
