package domain

// Objective é o objetivo canônico de campanha usado internamente.
// O motor de decisão trabalha com uma grafia própria (WhatsApp, SiteLeads,
// Traffic) e a normalização acontece nas bordas
type Objective string

const (
	ObjectiveWhatsApp  Objective = "WHATSAPP"
	ObjectiveSiteLeads Objective = "SITE_LEADS"
	ObjectiveTraffic   Objective = "TRAFFIC"
)

// engineObjectiveNames mapeia o objetivo canônico para o vocabulário do motor
// de decisão
var engineObjectiveNames = map[Objective]string{
	ObjectiveWhatsApp:  "WhatsApp",
	ObjectiveSiteLeads: "SiteLeads",
	ObjectiveTraffic:   "Traffic",
}

var canonicalObjectives = map[string]Objective{
	"WHATSAPP":   ObjectiveWhatsApp,
	"WHATS_APP":  ObjectiveWhatsApp,
	"SITELEADS":  ObjectiveSiteLeads,
	"SITE_LEADS": ObjectiveSiteLeads,
	"TRAFFIC":    ObjectiveTraffic,
}

// EngineName retorna a grafia do objetivo esperada pelo motor de decisão
func (o Objective) EngineName() string {
	if name, ok := engineObjectiveNames[o]; ok {
		return name
	}
	return string(o)
}

func (o Objective) IsValid() bool {
	_, ok := engineObjectiveNames[o]
	return ok
}

// NormalizeObjective converte qualquer grafia conhecida (canônica ou do motor
// de decisão, em qualquer caixa) para o objetivo canônico
func NormalizeObjective(raw string) (Objective, bool) {
	if raw == "" {
		return "", false
	}

	upper := toUpperSnake(raw)
	obj, ok := canonicalObjectives[upper]
	return obj, ok
}

// toUpperSnake normaliza grafias como "WhatsApp" e "SiteLeads" para
// comparação: remove espaços e converte transições de caixa em maiúsculas puras
func toUpperSnake(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c-('a'-'A'))
		case c == ' ' || c == '-':
			// ignora separadores
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
