package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qrcode_admin_v1/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

func TestQRCodeDraft_IsDirty(t *testing.T) {
	saved := QRCodeForm{
		Title:            "Summer",
		ProductID:        "gid://shopify/Product/1",
		ProductVariantID: "gid://shopify/ProductVariant/2",
		Destination:      "cart",
		ProfileID:        int64Ptr(5),
	}

	tests := []struct {
		name  string
		draft func(f QRCodeForm) QRCodeForm
		want  bool
	}{
		{"unchanged", func(f QRCodeForm) QRCodeForm { return f }, false},
		{"same profile different pointer", func(f QRCodeForm) QRCodeForm { f.ProfileID = int64Ptr(5); return f }, false},
		{"title", func(f QRCodeForm) QRCodeForm { f.Title = "Winter"; return f }, true},
		{"destination", func(f QRCodeForm) QRCodeForm { f.Destination = "product"; return f }, true},
		{"profile removed", func(f QRCodeForm) QRCodeForm { f.ProfileID = nil; return f }, true},
		{"profile changed", func(f QRCodeForm) QRCodeForm { f.ProfileID = int64Ptr(6); return f }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := QRCodeDraft{Saved: saved, Draft: tt.draft(saved)}
			assert.Equal(t, tt.want, d.IsDirty())
		})
	}
}

func TestQRCodeForm_Normalize(t *testing.T) {
	f := QRCodeForm{Title: "  Hello ", Destination: " cart", ProfileID: int64Ptr(0)}
	f.Normalize()

	assert.Equal(t, "Hello", f.Title)
	assert.Equal(t, "cart", f.Destination)
	assert.Nil(t, f.ProfileID)
}

func TestFormFromQRCode_RoundTrip(t *testing.T) {
	qr := &model.QRCode{
		Title:         "T",
		ProductID:     "gid://shopify/Product/1",
		ProductHandle: "tee",
		Destination:   "product",
		ProfileID:     int64Ptr(3),
		Scans:         9,
	}

	form := FormFromQRCode(qr)
	var copyQR model.QRCode
	copyQR.Scans = 9
	form.ApplyTo(&copyQR)

	assert.Equal(t, qr.Title, copyQR.Title)
	assert.Equal(t, *qr.ProfileID, *copyQR.ProfileID)
	assert.False(t, QRCodeDraft{Saved: form, Draft: FormFromQRCode(&copyQR)}.IsDirty())

	// 表单里的指针不与模型共享
	*form.ProfileID = 42
	assert.EqualValues(t, 3, *qr.ProfileID)
}
