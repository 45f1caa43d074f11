// Package alert emails low-stock warnings. Each time a mutation leaves a
// product below the replenishment threshold an alert is sent, and when Redis
// is available the event is buffered for a daily summary mail.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

type SMTPConfig struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

type Alerter struct {
	cfg SMTPConfig
	rdb *redis.Client
}

func New(cfg SMTPConfig) *Alerter {
	return &Alerter{cfg: cfg}
}

// SetRedis enables the daily-summary buffer.
func (a *Alerter) SetRedis(rdb *redis.Client) {
	a.rdb = rdb
}

const dailyLowStockLogKey = "alert:lowstock:daily"

type lowStockLogEntry struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Time      time.Time `json:"time"`
}

// LowStock implements shop.Notifier.
func (a *Alerter) LowStock(p models.Product) {
	log.Printf("ALERT: product %s (%s) is low on stock: %d %s left", p.ID, p.Name, p.Stock, p.Unit)

	if a.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		entry := lowStockLogEntry{ProductID: p.ID, Name: p.Name, Stock: p.Stock, Time: time.Now()}
		data, _ := json.Marshal(entry)
		_ = a.rdb.RPush(ctx, dailyLowStockLogKey, data).Err()
	}

	if a.cfg.Server == "" {
		return
	}

	subject := fmt.Sprintf("LOW STOCK: %s", p.Name)
	body := fmt.Sprintf("Product: %s (%s)\nStock: %d %s\nTime: %s",
		p.Name, p.ID, p.Stock, p.Unit, time.Now().Format(time.RFC3339))
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", a.cfg.From, a.cfg.To, subject, body)

	a.send([]byte(msg))
}

func (a *Alerter) send(msg []byte) {
	addr := fmt.Sprintf("%s:%s", a.cfg.Server, a.cfg.Port)
	auth := smtp.PlainAuth("", a.cfg.User, a.cfg.Password, a.cfg.Server)

	if a.cfg.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, a.cfg.From, []string{a.cfg.To}, msg); err != nil {
			log.Printf("Failed to send alert email: %v", err)
		}
	}()
}

// StartDailySummary sends one summary mail per day around midnight.
func (a *Alerter) StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		a.SendDailySummary()
	}
}

func (a *Alerter) SendDailySummary() {
	if a.rdb == nil || a.cfg.Server == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	entries, err := a.rdb.LRange(ctx, dailyLowStockLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = a.rdb.Del(ctx, dailyLowStockLogKey).Err() // clear after reading

	productCounts := make(map[string]int)
	var logs []lowStockLogEntry
	for _, item := range entries {
		var entry lowStockLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			productCounts[entry.Name]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Low-Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total alerts: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Product</h3><ul>")
	for name, count := range productCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> down to %d at %s</li>",
			entry.Name, entry.Stock, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + a.cfg.From,
		"To: " + a.cfg.To,
		"Subject: Daily Low-Stock Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	a.send([]byte(msg))
}
