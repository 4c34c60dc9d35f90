package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// SMSService delivers one-time codes to phones. Without gateway credentials it
// only logs the code, which is the development behavior.
type SMSService struct {
	gatewayURL string
	apiKey     string
	client     *http.Client
}

// NewSMSService creates an SMSService.
func NewSMSService(gatewayURL, apiKey string) *SMSService {
	return &SMSService{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		client:     http.DefaultClient,
	}
}

type smsMessage struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// SendOTP delivers a login code to the given phone number.
func (s *SMSService) SendOTP(phone, code string) error {
	if s.gatewayURL == "" {
		log.Printf("[SMS] OTP for %s: %s", phone, code)
		return nil
	}

	msg := smsMessage{
		To:   phone,
		Text: fmt.Sprintf("Your FreshCart login code is %s", code),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[SMS] Failed to send OTP: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[SMS] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	return nil
}
