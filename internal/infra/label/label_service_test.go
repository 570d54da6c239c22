package label

import (
	"encoding/json"
	"testing"

	domainerrors "packline/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelService_GenerateUnitLabel(t *testing.T) {
	svc := NewLabelService(256, "M")

	png, err := svc.GenerateUnitLabel("unit-qr-001")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestLabelService_ParseUnitQR_JSONPayload(t *testing.T) {
	svc := NewLabelService(256, "M")

	payload, err := json.Marshal(UnitQRData{Type: "unit", Code: "unit-qr-001"})
	require.NoError(t, err)

	code, err := svc.ParseUnitQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "unit-qr-001", code)
}

func TestLabelService_ParseUnitQR_BareCode(t *testing.T) {
	svc := NewLabelService(256, "M")

	code, err := svc.ParseUnitQR("  preprinted-001 ")
	require.NoError(t, err)
	assert.Equal(t, "preprinted-001", code)
}

func TestLabelService_ParseUnitQR_RoundTripWithGeneratedPayload(t *testing.T) {
	svc := NewLabelService(256, "M")

	// The scanner hands back exactly the JSON embedded in the label image.
	payload, err := json.Marshal(UnitQRData{Type: "unit", Code: "abc-123"})
	require.NoError(t, err)

	code, err := svc.ParseUnitQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", code)
}

func TestLabelService_ParseUnitQR_Rejects(t *testing.T) {
	svc := NewLabelService(256, "M")

	cases := []struct {
		name   string
		qrData string
	}{
		{name: "empty", qrData: ""},
		{name: "blank", qrData: "   "},
		{name: "broken json", qrData: "{not json"},
		{name: "wrong type", qrData: `{"type":"subscription","code":"x"}`},
		{name: "missing code", qrData: `{"type":"unit"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := svc.ParseUnitQR(tc.qrData)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidQRPayload)
			assert.Empty(t, code)
		})
	}
}
