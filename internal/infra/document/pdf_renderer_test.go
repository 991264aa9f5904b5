package document

import (
	"bytes"
	"context"
	"testing"
	"time"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/infra/qrcode"
	mockSvc "foundmoney/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(claimURL string) *service.ClaimDocument {
	return &service.ClaimDocument{
		Claim: &entity.ClaimInfo{
			ID:       "zoom-privacy-2024",
			Company:  "Zoom",
			Title:    "Zoom Privacy Settlement",
			Amount:   "$15-$25",
			ClaimURL: claimURL,
		},
		FormData: map[string]any{
			"full_name":      "Zoë Ångström",
			"mailing_street": "1 Main St",
			"skipped":        nil,
		},
		GeneratedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
}

func TestPDFRenderer_RenderClaimForm(t *testing.T) {
	renderer := NewPDFRenderer(qrcode.NewQRCodeService(128, "M"))
	ctx := context.Background()

	plain, err := renderer.RenderClaimForm(ctx, testDocument(""))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(plain, []byte("%PDF-")))

	withQR, err := renderer.RenderClaimForm(ctx, testDocument("https://www.zoomsettlement.com"))
	require.NoError(t, err)
	assert.Greater(t, len(withQR), len(plain), "the claim link adds an image")
}

func TestPDFRenderer_QRFailureFailsRender(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().
		Encode("https://www.zoomsettlement.com").
		Return(nil, errors.New("content too long"))

	_, err := NewPDFRenderer(qr).RenderClaimForm(context.Background(), testDocument("https://www.zoomsettlement.com"))
	assert.ErrorContains(t, err, "content too long")
}

func TestPDFRenderer_WithoutClaim(t *testing.T) {
	renderer := NewPDFRenderer(mockSvc.NewMockQRCodeService(t))

	out, err := renderer.RenderClaimForm(context.Background(), &service.ClaimDocument{
		FormData:    map[string]any{"email": "ada@example.com"},
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestFormRows(t *testing.T) {
	rows := formRows(map[string]any{
		"zip_code":   94107,
		"first_name": "Ada",
		"empty":      nil,
	})

	assert.Equal(t, [][2]string{{"First Name", "Ada"}, {"Zip Code", "94107"}}, rows)
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Date Of Birth", fieldLabel("date_of_birth"))
	assert.Equal(t, "Ssn Last4", fieldLabel("SSN_last4"))
	assert.Equal(t, "Email", fieldLabel("email"))
}
