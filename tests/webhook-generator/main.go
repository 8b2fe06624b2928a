package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const (
	webhookURL    = "http://localhost:8080/webhooks/zenopay"
	webhookSecret = "dev-webhook-secret"
)

type callback struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	Reference     string `json:"reference"`
	Reason        string `json:"reason,omitempty"`
}

var statuses = []string{"COMPLETED", "COMPLETED", "COMPLETED", "FAILED", "CANCELLED", "PENDING"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateCallback() callback {
	cb := callback{
		OrderID:       randomString(32),
		PaymentStatus: statuses[rand.Intn(len(statuses))],
		Reference:     fmt.Sprintf("REF%08d", rand.Intn(99999999)),
	}
	if cb.PaymentStatus == "FAILED" {
		cb.Reason = "Insufficient balance"
	}
	return cb
}

func send(cb callback) {
	data, _ := json.Marshal(cb)
	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(data))
	if err != nil {
		log.Println("failed to build request:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", webhookSecret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("request failed:", err)
		return
	}
	resp.Body.Close()
	log.Println("callback", cb.PaymentStatus, cb.OrderID, "->", resp.Status)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			send(generateCallback())
		case <-ctx.Done():
			return
		}
	}
}
