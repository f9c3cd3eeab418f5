package app

import (
	"fmt"
	"strings"

	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/pkg/common"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// sendOrderConfirmation mails the confirmation for a placed order. Mail is a
// best-effort side channel: missing SMTP config disables it silently and
// delivery failures only log.
func (a *Application) sendOrderConfirmation(order *domain.Order, items []domain.OrderItem) {
	host := a.settings.GetString("mail", "smtp_host")
	if host == "" || order.CustomerEmail == "" {
		return
	}
	port := a.settings.GetInt("mail", "smtp_port")
	if port == 0 {
		port = 25
	}
	user := a.settings.GetString("mail", "smtp_user")
	passwd := a.settings.GetString("mail", "smtp_passwd")
	from := a.settings.GetString("mail", "from")

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\r\n\r\nYour order %s has been confirmed.\r\n\r\n", order.CustomerName, order.Number)
	for _, item := range items {
		fmt.Fprintf(&body, "  %s x%d  %s .. %s  @ %s/day\r\n",
			item.Name, item.Qty, item.StartDate, item.EndDate, common.FormatAmount(item.UnitPrice))
	}
	fmt.Fprintf(&body, "\r\nSubtotal: %s\r\n", common.FormatAmount(order.Subtotal))
	fmt.Fprintf(&body, "Tax: %s\r\n", common.FormatAmount(order.Tax))
	fmt.Fprintf(&body, "Deposit estimate: %s\r\n", common.FormatAmount(order.DepositEstimate))
	fmt.Fprintf(&body, "Total: %s\r\n", common.FormatAmount(order.Total))

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmed - %s", order.Number))
	m.SetBody("text/plain", body.String())

	dialer := gomail.NewDialer(host, port, user, passwd)
	if err := dialer.DialAndSend(m); err != nil {
		zap.L().Error("failed to send order confirmation",
			zap.String("number", order.Number),
			zap.String("to", order.CustomerEmail),
			zap.Error(err))
		return
	}
	zap.L().Info("order confirmation sent",
		zap.String("number", order.Number),
		zap.String("to", order.CustomerEmail))
}
