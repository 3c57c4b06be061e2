package document

import (
	"fmt"
	"time"

	"docbot/domain"
	"docbot/pdf"
	"docbot/service"
)

var (
	cardCostIncludes = []string{
		"Conta IBAN pessoal",
		"Emissão e envio do cartão",
		"Serviços digitais",
		"Assistência prioritária",
	}

	cardAdvantages = []string{
		"Gestão online do crédito",
		"Mobile banking 24/7",
		"Condições flexíveis",
	}
)

func cardSpec(assets Assets) Spec {
	const nf = Currency
	return Spec{
		Kind:     domain.KindCardLetter,
		Margins:  pdf.DefaultMargins,
		Numbers:  nf,
		Decorate: letterDecoration(assets),
		Blocks: func(s *domain.Session, _ time.Time) []pdf.Block {
			return cardBlocks(s, assets, nf)
		},
	}
}

func monthsLabel(n int) string {
	if n == 1 {
		return fmt.Sprintf("%d mês", n)
	}
	return fmt.Sprintf("%d meses", n)
}

func cardBlocks(s *domain.Session, assets Assets, nf NumberFormat) []pdf.Block {
	st := pdf.Styles

	blocks := letterHeading()
	blocks = append(blocks,
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "Prezado(a) Cliente, "},
			{Text: s.Name, Bold: true},
		}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "Temos o prazer de lhe comunicar a aprovação do seu crédito em condições especiais:", Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Montante: "}, {Text: nf.Number(s.Amount), Bold: true}}, Style: st.LetterBody},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Prazo: "}, {Text: monthsLabel(s.Months), Bold: true}}, Style: st.LetterBody},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Taxa: "}, {Text: service.FormatRate(s.TAN), Bold: true}}, Style: st.LetterBody},
		pdf.RichParagraph{Spans: []pdf.Span{{Text: "Prestação: "}, {Text: nf.Number(s.Payment) + " por mês", Bold: true}}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "Para receber os fundos:", Style: st.LetterBody},
		pdf.Paragraph{Text: "Abrir uma conta de crédito", Style: st.LetterBody},
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "Ativar o cartão de crédito (custo "},
			{Text: "170,00 €", Bold: true},
			{Text: ")"},
		}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "O custo inclui:", Style: st.LetterBody},
		pdf.List{Items: cardCostIncludes, Bullet: "•", Style: st.LetterBullet},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "A sua segurança:", Style: st.LetterBody},
		pdf.RichParagraph{Spans: []pdf.Span{
			{Text: "O pagamento de "},
			{Text: "170,00 €", Bold: true},
			{Text: " garante proteção antifraude e verificação de identidade."},
		}, Style: st.LetterBody},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "Vantagens:", Style: st.LetterBody},
		pdf.List{Items: cardAdvantages, Bullet: "✓", Style: st.LetterCheck},
		pdf.Spacer{Height: 8},
		pdf.Paragraph{Text: "Atenciosamente,\nCaixa Geral de Depósitos", Style: st.LetterBody},
		pdf.Spacer{Height: 30},
		pdf.Draw{Drawable: pdf.SignatureLine{
			Label:      "Responsabile Ufficio Crediti Clientela Privata",
			Font:       st.LetterBody,
			SignPath:   assets.SignaturePath,
			SignWidth:  4 * pdf.Cm,
			SignHeight: 2 * pdf.Cm,
		}},
	)
	return blocks
}
