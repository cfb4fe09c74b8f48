package usecase

import (
	"context"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type GetPageContentUseCase struct {
	content port.ContentProviderPort
}

func NewGetPageContentUseCase(content port.ContentProviderPort) *GetPageContentUseCase {
	return &GetPageContentUseCase{content: content}
}

func (uc *GetPageContentUseCase) Execute(ctx context.Context) (*domain.SiteContent, error) {
	content, err := uc.content.GetSiteContent(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to get site content", err, port.Fields{
			"use_case": "GetPageContent",
		})
		return nil, err
	}
	return content, nil
}
