package appointment

import (
	"fmt"
	"strings"

	"github.com/BeautyProBR/beautypro-api/internal/models"
)

// ProposalMessage monta o texto pronto para o profissional enviar ao
// cliente pelo WhatsApp. A API não entrega a mensagem: só formata.
func ProposalMessage(clientName string, p *models.RescheduleProposal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Olá %s! Preciso reagendar seu atendimento. Estas são as opções disponíveis:\n\n", clientName)

	options := []struct {
		date string
		hour string
	}{
		{p.Date1, p.Time1},
		{p.Date2, p.Time2},
		{p.Date3, p.Time3},
	}

	for i, opt := range options {
		if opt.date == "" || opt.hour == "" {
			continue
		}
		fmt.Fprintf(&b, "Opção %d: %s às %s\n", i+1, opt.date, opt.hour)
	}

	if p.Message != "" {
		fmt.Fprintf(&b, "\nMensagem: %s\n", p.Message)
	}

	b.WriteString("\nPor favor, responda qual opção prefere ou se nenhuma funciona.")

	return b.String()
}
