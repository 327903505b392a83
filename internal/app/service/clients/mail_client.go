package clients

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/sethgrid/pester"
	"github.com/videohub/videohub/internal/app/config"
	"github.com/videohub/videohub/internal/app/logger"
	"go.uber.org/zap"
)

type (
	// MailClient delivers outbound mail through an HTTP relay. Sends are
	// fire-and-forget: a failed delivery is logged, never surfaced to users.
	MailClient interface {
		Send(to, subject, htmlBody string) bool
	}
	MailClientImpl struct {
		relayURL     string
		apiKey       string
		fromAddress  string
		pesterClient *pester.Client
	}
	//easyjson:json
	MailMessageDto struct {
		From     string `json:"from"`
		To       string `json:"to"`
		Subject  string `json:"subject"`
		HTMLBody string `json:"html_body"`
	}
)

func NewMailClient(c config.AppConfig) *MailClientImpl {
	pesterClient := pester.New()
	pesterClient.Concurrency = 1
	pesterClient.MaxRetries = 3
	pesterClient.Backoff = pester.ExponentialBackoff
	pesterClient.KeepLog = true
	pesterClient.Timeout = 10 * time.Second

	return &MailClientImpl{
		relayURL:     c.MailRelayURL,
		apiKey:       c.MailRelayAPIKey,
		fromAddress:  c.MailFromAddress,
		pesterClient: pesterClient,
	}
}

func (mc *MailClientImpl) Send(to, subject, htmlBody string) bool {
	msg := MailMessageDto{
		From:     mc.fromAddress,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	}
	body, err := msg.MarshalJSON()
	if err != nil {
		logger.Log.Error("marshal mail message", zap.Error(err))
		return false
	}

	req, err := http.NewRequest(http.MethodPost, mc.relayURL+"/v1/messages", bytes.NewBuffer(body))
	if err != nil {
		logger.Log.Error("build mail request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", mc.apiKey))

	resp, err := mc.pesterClient.Do(req)
	if err != nil {
		logger.Log.Error("send mail", zap.Error(err), zap.String("to", to))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Log.Error("mail relay rejected message",
			zap.Int("status", resp.StatusCode), zap.String("to", to))
		return false
	}
	logger.Log.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
