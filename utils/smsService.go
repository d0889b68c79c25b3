package utils

import (
	"fams/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendTagNumberSMS notifies a trainee of their tag number via the configured
// SMS gateway. Delivery is best-effort; registration never rolls back over a
// failed notification.
func SendTagNumberSMS(phoneNumber, firstName, tagNumber string) error {
	if config.AppConfig.SMSApiURL == "" {
		log.Println("SMS gateway not configured, skipping tag number SMS")
		return nil
	}

	message := fmt.Sprintf("Dear %s, your CSS FARMS registration is complete. Your tag number is %s.", firstName, tagNumber)

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization": config.AppConfig.SMSApiKey,
			"sender_id":     config.AppConfig.SMSSender,
			"message":       message,
			"numbers":       phoneNumber,
		}).
		Get(config.AppConfig.SMSApiURL)

	if err != nil {
		log.Printf("Error while sending tag number SMS: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send SMS, code: %d", resp.StatusCode())
	}

	log.Println("Tag number SMS sent successfully to", phoneNumber)
	return nil
}
