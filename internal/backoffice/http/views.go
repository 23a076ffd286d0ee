package http

import (
	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
)

func accountView(a domain.Account, role domain.Role) adminapi.Account {
	return adminapi.Account{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      string(role),
		CreatedAt: a.CreatedAt,
	}
}

func accountViews(rows []store.AccountWithRole) []adminapi.Account {
	out := make([]adminapi.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, accountView(row.Account, row.Role))
	}
	return out
}

func invitationView(inv domain.Invitation) adminapi.Invitation {
	return adminapi.Invitation{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Token:     inv.Token,
		InvitedBy: inv.InvitedBy,
		CreatedAt: inv.CreatedAt,
		ExpiresAt: inv.ExpiresAt,
	}
}

func sheetView(s domain.TechnicalSheet) adminapi.TechnicalSheet {
	return adminapi.TechnicalSheet{
		ID:        s.ID,
		Slug:      s.Slug,
		Title:     s.Title,
		Category:  s.Category,
		Content:   s.Content,
		Published: s.Published,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func sheetViews(sheets []domain.TechnicalSheet) []adminapi.TechnicalSheet {
	out := make([]adminapi.TechnicalSheet, 0, len(sheets))
	for _, s := range sheets {
		out = append(out, sheetView(s))
	}
	return out
}

func videoView(v domain.Video) adminapi.Video {
	return adminapi.Video{
		ID:          v.ID,
		Title:       v.Title,
		URL:         v.URL,
		Description: v.Description,
		Published:   v.Published,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func videoViews(videos []domain.Video) []adminapi.Video {
	out := make([]adminapi.Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, videoView(v))
	}
	return out
}
