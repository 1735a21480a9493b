//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=whatsapp_test
package whatsapp

import (
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type client interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}
