package domain

// Theme holds the presentation parameters bound to a source kind.
type Theme struct {
	Emoji           string
	Heading         string
	IntroText       string
	ThemeColor      string
	AccentColor     string
	BackgroundColor string
	BorderColor     string
	SectionTitle    string
	Closing         string
	CreditLabel     string
	DefaultMessage  string
}

var themes = map[SourceKind]Theme{
	SourceSpace: {
		Emoji:           "🌌",
		Heading:         "✨ Para o meu Universo ✨",
		IntroText:       "Olhei para o espaço hoje e lembrei de você!",
		ThemeColor:      "#0277bd",
		AccentColor:     "#039be5",
		BackgroundColor: "#f0f8ff",
		BorderColor:     "#81d4fa",
		SectionTitle:    "O que estamos vendo?",
		Closing:         "Com todo o amor do mundo (e de todas as galáxias!),",
		CreditLabel:     "Créditos da imagem",
		DefaultMessage:  "O universo é infinito, mas você ainda é minha descoberta favorita!",
	},
	SourceArt: {
		Emoji:           "🎨",
		Heading:         "🖼️ Uma Obra de Arte para Você 🖼️",
		IntroText:       "Passeei por um museu hoje e lembrei de você!",
		ThemeColor:      "#8d3b2f",
		AccentColor:     "#b5651d",
		BackgroundColor: "#fdf6ec",
		BorderColor:     "#e0b98a",
		SectionTitle:    "Sobre esta obra",
		Closing:         "Com todo o amor do mundo (e de todos os museus!),",
		CreditLabel:     "Créditos da obra",
		DefaultMessage:  "Nenhuma obra-prima se compara a você, minha arte favorita!",
	},
}

// ThemeFor returns the presentation parameters for kind. Unknown kinds get
// the space theme.
func ThemeFor(kind SourceKind) Theme {
	if t, ok := themes[kind]; ok {
		return t
	}
	return themes[SourceSpace]
}
