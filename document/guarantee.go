package document

import (
	"time"

	"docbot/domain"
	"docbot/pdf"
)

var (
	guaranteePurpose = []string{
		"Garantir a concessão segura dos fundos",
		"Assegurar a correta gestão do crédito",
		"Proteção contra potenciais riscos",
	}

	guaranteeAdvantages = []string{
		"Conformidade com os padrões internacionais de segurança",
		"Condições transparentes",
		"Proteção dos interesses do cliente",
	}
)

// letterDecoration is the shared page dressing of both notice letters: a
// blue border and the centered top logo, repeated on every page.
func letterDecoration(assets Assets) func(pdf.Canvas) {
	border := pdf.PageBorder{Color: pdf.HexRGB("#0c3270"), LineWidth: 5, Inset: pdf.Cm}
	logo := pdf.RepeatingLogo{
		Path:         assets.LogoPath,
		TargetHeight: 3.6 * pdf.Cm,
		Anchor:       pdf.AnchorTopCenter,
		InsetY:       2 * pdf.Cm,
	}
	return func(c pdf.Canvas) {
		border.Place(c, 0, 0, 0)
		logo.Place(c, 0, 0, 0)
	}
}

// letterHeading is the space reserved under the logo plus the two centered
// department headers that open both letters.
func letterHeading() []pdf.Block {
	st := pdf.Styles
	return []pdf.Block{
		pdf.Spacer{Height: 3.2*pdf.Cm + 8},
		pdf.Paragraph{Text: "Caixa Geral de Depósitos", Style: st.LetterHeader},
		pdf.Paragraph{Text: "Departamento de Clientes Privados", Style: st.LetterSub},
		pdf.Spacer{Height: 16},
	}
}

func guaranteeSpec(assets Assets) Spec {
	return Spec{
		Kind:     domain.KindGuaranteeLetter,
		Margins:  pdf.DefaultMargins,
		Numbers:  Currency,
		Decorate: letterDecoration(assets),
		Blocks: func(s *domain.Session, _ time.Time) []pdf.Block {
			return guaranteeBlocks(s, assets)
		},
	}
}

func guaranteeBlocks(s *domain.Session, assets Assets) []pdf.Block {
	st := pdf.Styles

	blocks := letterHeading()
	blocks = append(blocks,
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "Assunto:", Bold: true},
			{Text: " Pagamento da Contribuição de Garantia"},
		}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "Prezado(a) Cliente, "},
			{Text: s.Name, Bold: true},
		}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{
			Text: "Durante a análise do seu pedido de financiamento, o nosso serviço de segurança identificou o seu perfil " +
				"como pertencente à categoria de alto risco, de acordo com as políticas internas de scoring de crédito da Caixa.",
			Style: st.LetterBody,
		},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "Em conformidade com a legislação em vigor e com os procedimentos internos de segurança da Caixa, " +
				"para concluir a concessão do financiamento aprovado é necessário efetuar o pagamento de uma " +
				"Contribuição de Garantia única no valor de "},
			{Text: "€ 190,00", Bold: true},
			{Text: "."},
		}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Finalidade da contribuição:", Bold: true}}, Style: st.LetterBody},
		pdf.Spacer{Height: 4},
		pdf.List{Items: guaranteePurpose, Bullet: "•", Style: st.LetterBullet},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Condição obrigatória:", Bold: true}}, Style: st.LetterBody},
		pdf.Spacer{Height: 4},
		pdf.Paragraph{
			Text: "Todas as operações financeiras, incluindo o pagamento da Contribuição de Garantia, devem ser " +
				"realizadas exclusivamente através do nosso parceiro oficial – CubicFinance, Lda.",
			Style: st.LetterBody,
		},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Vantagens da Caixa:", Bold: true}}, Style: st.LetterBody},
		pdf.Spacer{Height: 4},
		pdf.List{Items: guaranteeAdvantages, Bullet: "✓", Style: st.LetterCheck},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{
			Text:  "Para mais esclarecimentos ou assistência no procedimento de pagamento, poderá dirigir-se a qualquer agência da Caixa.",
			Style: st.LetterBody,
		},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "Atenciosamente,\nCaixa Geral de Depósitos", Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "P.S.", Bold: true},
			{Text: " Informamos que este requisito é condição indispensável para a concessão do financiamento aprovado."},
		}, Style: st.LetterPS},
		pdf.Spacer{Height: 24},
		pdf.Spacer{Height: 30},
		pdf.Draw{Drawable: pdf.SignatureLine{
			Label:      "Responsável do Departamento de Crédito a Clientes Privados",
			Font:       st.LetterBody,
			SignPath:   assets.SignaturePath,
			SignWidth:  4 * pdf.Cm,
			SignHeight: 2 * pdf.Cm,
		}},
	)
	return blocks
}
