package notify

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/bidfelt/searchcore/internal/config"
	"github.com/bidfelt/searchcore/internal/domain"
)

func testNotifyConfig() config.NotifyConfig {
	return config.NotifyConfig{
		FromAddress:  "no-reply@bidfelt.example",
		DeepLinkBase: "https://bidfelt.example",
	}
}

func TestCompose_EmailPreferred(t *testing.T) {
	t.Parallel()

	email := "buyer@example.com"
	phone := "+4512345678"
	req := &domain.InterestRequest{
		SearchQuery: "vintage omega seamaster",
		Email:       &email,
		Phone:       &phone,
	}
	item := domain.NewItem{
		Title:    "Vintage Omega Seamaster 1962",
		ItemType: domain.SelectedTypeAuction,
		ItemID:   "auc-99812",
	}

	msg := Compose(req, item, testNotifyConfig())

	if msg.To != email {
		t.Errorf("to: got %q, want email %q", msg.To, email)
	}
	if msg.DeepLink != "https://bidfelt.example/auction/auc-99812" {
		t.Errorf("deep link: got %q", msg.DeepLink)
	}
	if !strings.Contains(msg.Body, item.Title) {
		t.Errorf("body should mention the item title, got %q", msg.Body)
	}
	if !strings.Contains(msg.Subject, req.SearchQuery) {
		t.Errorf("subject should mention the query, got %q", msg.Subject)
	}
}

func TestCompose_PhoneFallback(t *testing.T) {
	t.Parallel()

	phone := "+4512345678"
	req := &domain.InterestRequest{SearchQuery: "ps5 bundle", Phone: &phone}

	msg := Compose(req, domain.NewItem{ItemType: domain.SelectedTypeDirectSale, ItemID: "ds-1"}, testNotifyConfig())

	if msg.To != phone {
		t.Errorf("to: got %q, want phone %q", msg.To, phone)
	}
}

func TestLogDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	d := NewLogDispatcher(slog.Default())
	err := d.Dispatch(context.Background(), Message{To: "buyer@example.com", Subject: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
