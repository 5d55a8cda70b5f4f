// Package assistant is the pattern-matched helper of the estimate builder.
// It recognises a few keywords and service names; there is no language model
// behind it.
package assistant

import (
	"fmt"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/pricing"
	"github.com/Skale-Club/xtimator/internal/domain/search"
)

type Intent string

const (
	IntentHelp     Intent = "help"
	IntentReview   Intent = "review"
	IntentDiscount Intent = "discount"
	IntentService  Intent = "service"
	IntentUnknown  Intent = "unknown"
)

const (
	WelcomeMessage  = "Olá! Vou te ajudar a criar um orçamento. Você pode adicionar serviços da lista ou me descrever o que precisa."
	HelpMessage     = "Você pode:\n- Adicionar serviços clicando no botão \"+\" abaixo\n- Enviar fotos do trabalho\n- Ajustar quantidades dos itens\n- Quando terminar, clique em \"Revisar Orçamento\""
	ReviewMessage   = "Ótimo! Clique no botão \"Revisar Orçamento\" para ver o resumo e gerar o PDF."
	DiscountMessage = "Você pode aplicar descontos na tela de revisão do orçamento."
	FallbackMessage = "Entendi! Para adicionar serviços específicos, use o botão \"+\" abaixo ou me descreva o que precisa com mais detalhes."
	PhotoMessage    = "Foto adicionada ao orçamento! As fotos ajudam o cliente a entender melhor o trabalho."
)

// Reply is the assistant answer. Service is set for IntentService.
type Reply struct {
	Intent  Intent
	Content string
	Service *entities.ServiceItem
}

var keywords = []struct {
	intent  Intent
	words   []string
	message string
}{
	{IntentHelp, []string{"ajuda", "como"}, HelpMessage},
	{IntentReview, []string{"pronto", "finalizar", "revisar"}, ReviewMessage},
	{IntentDiscount, []string{"desconto"}, DiscountMessage},
}

// Respond answers input. Keywords win over service names; the first service
// whose name or description contains the whole input is quoted.
func Respond(input string, services []entities.ServiceItem, currencySymbol string) Reply {
	folded := search.Fold(strings.TrimSpace(input))

	for _, k := range keywords {
		for _, w := range k.words {
			if strings.Contains(folded, w) {
				return Reply{Intent: k.intent, Content: k.message}
			}
		}
	}

	if folded != "" {
		for i := range services {
			s := services[i]
			if strings.Contains(search.Fold(s.Name), folded) || strings.Contains(search.Fold(s.Description), folded) {
				return Reply{
					Intent:  IntentService,
					Content: fmt.Sprintf("Encontrei \"%s\" por %s/%s. Quer que eu adicione ao orçamento?", s.Name, pricing.FormatCurrency(s.BasePrice, currencySymbol), s.UnitLabel),
					Service: &s,
				}
			}
		}
	}

	return Reply{Intent: IntentUnknown, Content: FallbackMessage}
}

// ServiceAdded is the confirmation posted after a service joins the draft.
// itemCount is the number of line items after the addition.
func ServiceAdded(name string, itemCount int) string {
	if itemCount <= 1 {
		return fmt.Sprintf("Adicionei \"%s\" ao orçamento. Quer adicionar mais algum serviço?", name)
	}
	return fmt.Sprintf("Adicionei \"%s\" ao orçamento. Agora você tem %d itens no orçamento.", name, itemCount)
}
