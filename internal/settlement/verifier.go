package settlement

import (
	"cardamom-auction/internal/biddingerrors"
	"cardamom-auction/utils"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=verifier.go -destination=mock_verifier_test.go -package=settlement

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const statusApproved = "approved"

// Verifier confirms with the payment gateway that an external reference is a
// completed payment of at least amount.
type Verifier interface {
	Verify(ctx context.Context, externalRef string, amount float64) error
}

// SandboxVerifier accepts every non-empty reference. It stands in for the gateway
// when the checkout widget is simulated.
type SandboxVerifier struct{}

func (SandboxVerifier) Verify(_ context.Context, externalRef string, _ float64) error {
	if externalRef == "" {
		return fmt.Errorf("settlement: %w - empty payment reference", biddingerrors.ErrPaymentUnverified)
	}
	return nil
}

// MercadoPagoVerifier looks the payment up through the Mercado Pago API
type MercadoPagoVerifier struct {
	client payment.Client
}

func NewMercadoPagoVerifier(accessToken string) (*MercadoPagoVerifier, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("settlement: creating mercado pago config: %w", err)
	}
	utils.Info("settlement: mercado pago client initialized", nil)

	return &MercadoPagoVerifier{client: payment.NewClient(cfg)}, nil
}

func (v *MercadoPagoVerifier) Verify(ctx context.Context, externalRef string, amount float64) error {
	id, err := strconv.Atoi(externalRef)
	if err != nil {
		return fmt.Errorf("settlement: %w - reference %q is not a payment id", biddingerrors.ErrPaymentUnverified, externalRef)
	}

	resp, err := v.client.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("settlement: %w - gateway lookup of %s failed: %v", biddingerrors.ErrPaymentUnverified, externalRef, err)
	}
	if resp.Status != statusApproved {
		return fmt.Errorf("settlement: %w - payment %s has status %q", biddingerrors.ErrPaymentUnverified, externalRef, resp.Status)
	}
	if decimal.NewFromFloat(resp.TransactionAmount).LessThan(decimal.NewFromFloat(amount)) {
		return fmt.Errorf("settlement: %w - payment %s covers %.2f of %.2f", biddingerrors.ErrPaymentUnverified, externalRef, resp.TransactionAmount, amount)
	}
	return nil
}

// NewVerifier picks the verifier for the configured gateway
func NewVerifier(gateway, accessToken string) (Verifier, error) {
	switch gateway {
	case "", "mock":
		utils.Warn("settlement: payment gateway mock mode enabled", nil)
		return SandboxVerifier{}, nil
	case "mercadopago":
		return NewMercadoPagoVerifier(accessToken)
	default:
		return nil, fmt.Errorf("settlement: unknown payment gateway %q", gateway)
	}
}

// ToMinorUnits converts an amount to the gateway's integer minor units (paise, cents)
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
