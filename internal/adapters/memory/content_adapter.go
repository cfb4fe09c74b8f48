package memory

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contracts"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
)

// ContentAdapter отдает статический контент страницы
type ContentAdapter struct {
	content domain.SiteContent
}

func NewContentAdapter() (*ContentAdapter, error) {
	raw, err := seedFS.ReadFile("seed/content.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded content: %w", err)
	}
	return NewContentAdapterFromYAML(raw)
}

func NewContentAdapterFromYAML(raw []byte) (*ContentAdapter, error) {
	var content domain.SiteContent
	if err := decodeDocument(contracts.SiteContentDocument, raw, &content); err != nil {
		return nil, err
	}
	if content.Services == nil {
		content.Services = []domain.ServiceOffer{}
	}
	if content.About.Stats == nil {
		content.About.Stats = []domain.StatItem{}
	}
	if content.Contacts.WorkingHours == nil {
		content.Contacts.WorkingHours = []string{}
	}
	return &ContentAdapter{content: content}, nil
}

// GetSiteContent возвращает копию, срезы тоже копируются
func (a *ContentAdapter) GetSiteContent(ctx context.Context) (*domain.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := a.content
	c.Services = append([]domain.ServiceOffer(nil), a.content.Services...)
	c.About.Stats = append([]domain.StatItem(nil), a.content.About.Stats...)
	c.Contacts.WorkingHours = append([]string(nil), a.content.Contacts.WorkingHours...)
	return &c, nil
}
