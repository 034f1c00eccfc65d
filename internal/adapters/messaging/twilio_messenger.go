package messaging

import (
	"context"
	"errors"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type createMessageFunc func(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)

// TwilioMessenger sends SMS through the Twilio Messages API.
// Provider failures (auth, invalid number, rate limit) are returned unchanged
// in kind; no retry is attempted.
type TwilioMessenger struct {
	create createMessageFunc
}

func NewTwilioMessenger(accountSID, authToken string) (*TwilioMessenger, error) {
	if strings.TrimSpace(accountSID) == "" || strings.TrimSpace(authToken) == "" {
		return nil, errors.New("twilio credentials are empty")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioMessenger{
		create: func(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
			return client.Api.CreateMessage(params)
		},
	}, nil
}

func (t *TwilioMessenger) Send(
	ctx context.Context,
	req domain.NotificationRequest,
) (_ domain.NotificationReceipt, err error) {
	defer obs.Time(ctx, "twilio.Send")(&err)

	// The Twilio client does not take a context; honour cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return domain.NotificationReceipt{}, err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(req.Body)
	params.SetFrom(req.From)
	params.SetTo(req.To)

	msg, err := t.create(params)
	if err != nil {
		return domain.NotificationReceipt{}, fmt.Errorf("twilio create message to %q: %w", req.To, err)
	}

	if msg == nil || msg.Sid == nil || *msg.Sid == "" {
		return domain.NotificationReceipt{}, errors.New("twilio create message: response has no sid")
	}

	return domain.NotificationReceipt{MessageID: *msg.Sid}, nil
}
