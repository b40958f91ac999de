package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/middleware"
)

// dispatchTimeout bounds a single outbound notification attempt.
const dispatchTimeout = 5 * time.Second

// WhatsAppDispatcher turns a recorded job into a WhatsApp receipt message.
// When a gateway URL is configured the receipt is POSTed there; otherwise the
// prepared wa.me link is only logged, which is enough for the operator to
// forward it manually. Either way the dispatch is asynchronous and
// best-effort: the ledger never waits for it and never rolls back on failure.
type WhatsAppDispatcher struct {
	gatewayURL string
	client     *http.Client
}

// NewWhatsAppDispatcher creates the dispatcher. gatewayURL may be empty.
func NewWhatsAppDispatcher(gatewayURL string) *WhatsAppDispatcher {
	return &WhatsAppDispatcher{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: dispatchTimeout},
	}
}

var _ portssvc.NotificationDispatcher = (*WhatsAppDispatcher)(nil)

// DispatchReceipt decides from the settings snapshot whether to notify, and
// if so hands the receipt off without blocking the caller.
func (d *WhatsAppDispatcher) DispatchReceipt(ctx context.Context, job domain.PrintJob, settings domain.Settings) {
	if !settings.EnableWhatsappNotification {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	// The request context ends with the HTTP response; the notification must
	// outlive it.
	go d.send(context.WithoutCancel(ctx), job, settings, logger)
}

func (d *WhatsAppDispatcher) send(ctx context.Context, job domain.PrintJob, settings domain.Settings, logger *slog.Logger) {
	message := buildReceiptMessage(job, settings)
	link := "https://wa.me/?text=" + url.QueryEscape(message)

	if d.gatewayURL == "" {
		logger.Info("WhatsApp receipt prepared",
			slog.String("serial_number", job.SerialNumber),
			slog.String("link", link))
		return
	}

	payload, err := json.Marshal(map[string]string{
		"serialNumber": job.SerialNumber,
		"message":      message,
		"link":         link,
	})
	if err != nil {
		logger.Warn("Failed to encode WhatsApp notification", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		logger.Warn("Failed to build WhatsApp gateway request", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		logger.Warn("Failed to deliver WhatsApp notification",
			slog.String("serial_number", job.SerialNumber),
			slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("WhatsApp gateway rejected notification",
			slog.String("serial_number", job.SerialNumber),
			slog.Int("status", resp.StatusCode))
		return
	}
	logger.Info("WhatsApp notification delivered", slog.String("serial_number", job.SerialNumber))
}

// buildReceiptMessage renders the full receipt text for a job.
func buildReceiptMessage(job domain.PrintJob, settings domain.Settings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s - Receipt*\n\n", settings.ShopName)
	fmt.Fprintf(&b, "*Receipt Number:* %s\n", job.SerialNumber)
	fmt.Fprintf(&b, "*Date:* %s\n\n", job.Timestamp.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "*Class:* %s\n", job.ClassName)
	if job.TeacherName != "" && job.TeacherName != "none" {
		fmt.Fprintf(&b, "*Teacher:* %s\n", job.TeacherName)
	}
	if job.DocumentType != "" && job.DocumentType != "none" {
		fmt.Fprintf(&b, "*Document Type:* %s\n", job.DocumentType)
	}
	fmt.Fprintf(&b, "*Print Type:* %s\n", job.PrintType)
	fmt.Fprintf(&b, "*Pages:* %d\n", job.Pages)
	fmt.Fprintf(&b, "*Copies:* %d\n", job.Copies)
	fmt.Fprintf(&b, "*Total Price:* %s MAD\n\n", job.TotalPrice.StringFixed(2))
	if job.Notes != "" {
		fmt.Fprintf(&b, "*Notes:* %s\n\n", job.Notes)
	}

	if job.Paid {
		b.WriteString("*Payment Status:* PAID\n")
		b.WriteString("\n*CONFIRMATION:* Payment received. Thank you!")
	} else {
		b.WriteString("*Payment Status:* UNPAID\n")
		b.WriteString("\n*REMINDER:* Please arrange payment as soon as possible. Thank you!")
	}

	if settings.WhatsappTemplate != "" {
		b.WriteString("\n\n")
		b.WriteString(settings.WhatsappTemplate)
	}

	return b.String()
}
