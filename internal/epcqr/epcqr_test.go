package epcqr_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/epcqr"
)

func TestBuildPayloadShape(t *testing.T) {
	amount := decimal.RequireFromString("950")
	payload := epcqr.BuildPayload("Max Mustermann", "DE02 1203 0000 0000 2020 51", amount, "2026-0001", "BYLADEM1001")

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 11)

	assert.Equal(t, "BCD", lines[0])
	assert.Equal(t, "002", lines[1])
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "SCT", lines[3])
	assert.Equal(t, "BYLADEM1001", lines[4])
	assert.Equal(t, "Max Mustermann", lines[5])
	assert.Equal(t, "DE02120300000000202051", lines[6], "IBAN spaces must be stripped")
	assert.Equal(t, "EUR950.00", lines[7], "amount is always dot-decimal")
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "2026-0001", lines[9])
	assert.Equal(t, "", lines[10])
}

func TestBuildPayloadOmittedBICKeepsLine(t *testing.T) {
	amount := decimal.RequireFromString("12.3")
	payload := epcqr.BuildPayload("Max Mustermann", "DE02120300000000202051", amount, "2026-0002", "")

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 11, "an omitted BIC is an empty line, not a missing one")
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "EUR12.30", lines[7])
}

func TestBuildPayloadReproducible(t *testing.T) {
	amount := decimal.RequireFromString("1234.56")
	a := epcqr.BuildPayload("Seller", "DE02 1203 0000 0000 2020 51", amount, "2026-0003", "")
	b := epcqr.BuildPayload("Seller", "DE02 1203 0000 0000 2020 51", amount, "2026-0003", "")
	assert.Equal(t, a, b)
}

func TestSVGEncoder(t *testing.T) {
	svg, err := epcqr.SVGEncoder{}.EncodeSVG("BCD\n002\n1\nSCT")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `width="128"`)
}

func TestNoopEncoder(t *testing.T) {
	svg, err := epcqr.NoopEncoder{}.EncodeSVG("anything")
	assert.ErrorIs(t, err, epcqr.ErrEncoderUnavailable)
	assert.Empty(t, svg)
}
