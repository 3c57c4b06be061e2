package document

import (
	"fmt"
	"time"

	"docbot/domain"
	"docbot/pdf"
)

// DefaultPlace is the fallback for the contract's place-and-date line.
const DefaultPlace = "Lisboa"

var (
	contractIntro = "Agradecemos por ter escolhido a Caixa Geral de Depósitos como o seu parceiro financeiro. " +
		"Seguem abaixo as principais condições e obrigações relativas ao crédito concedido. " +
		"Solicitamos que as leia atentamente antes da assinatura do contrato."

	contractBenefits = []string{
		"Pausa de pagamentos: Possibilidade de suspender até 3 prestações consecutivas.",
		"Amortização antecipada: Sem penalizações.",
		"Redução da TAN: Redução de 0,10 p.p. a cada 12 prestações pagas pontualmente (até um mínimo de 2,80%).",
		"CashBack: Reembolso de 1% sobre cada prestação paga.",
		"\"Financial Navigator\": Acesso gratuito por 12 meses.",
		"Transferências SEPA gratuitas: Sem custos para débitos diretos (SDD).",
	}

	contractPenalties = []string{
		"Atraso no pagamento > 5 dias: Aplicação de juros de mora correspondentes a TAN + 2 p.p.",
		"Despesas de aviso: 10 € (em papel) / 5 € (digital).",
		"Falta de pagamento de 2 prestações: Vencimento antecipado da dívida e início do processo de recuperação de crédito.",
		"Revogação do seguro obrigatório: Obrigação de repor a cobertura no prazo de 15 dias.",
	}

	contractClosing = "Convidamo-lo a verificar se compreendeu integralmente as suas obrigações perante o banco. " +
		"Para qualquer esclarecimento, os nossos consultores estão à sua disposição."
)

func contractSpec(assets Assets) Spec {
	const nf = DecimalComma
	return Spec{
		Kind:    domain.KindContract,
		Margins: pdf.DefaultMargins,
		Numbers: nf,
		Decorate: func(c pdf.Canvas) {
			pdf.RepeatingLogo{
				Path:         assets.LogoPath,
				TargetHeight: 3.2 * pdf.Cm / 1.5,
				Anchor:       pdf.AnchorTopRight,
				InsetX:       2 * pdf.Cm,
				InsetY:       1.2 * pdf.Cm,
			}.Place(c, 0, 0, 0)
		},
		Blocks: func(s *domain.Session, now time.Time) []pdf.Block {
			return contractBlocks(s, now, assets, nf)
		},
	}
}

func contractBlocks(s *domain.Session, now time.Time, assets Assets, nf NumberFormat) []pdf.Block {
	params := []string{
		fmt.Sprintf("Montante solicitado: %s €", nf.Number(s.Amount)),
		fmt.Sprintf("Taxa Anual Nominal (TAN) fixa: %s%%", nf.Number(s.TAN)),
		fmt.Sprintf("Taxa Anual Efetiva Global (TAEG) indicativa: %s%%", nf.Number(s.TAEG)),
		fmt.Sprintf("Prazo: %d meses", s.Months),
		fmt.Sprintf("Prestação mensal: %s €", nf.Number(s.Payment)),
		"Comissão de processamento de prestação: 0 €",
		"Taxa administrativa: 90 €",
		"Prémio de seguro obrigatório: 150,00 € (gerido por CubicFinance, Lda.)",
	}

	st := pdf.Styles
	return []pdf.Block{
		pdf.Spacer{Height: 12},
		pdf.Paragraph{Text: "Caixa Geral de Depósitos, S.A.", Style: st.ContractHeader},
		pdf.Spacer{Height: 10},
		pdf.Paragraph{
			Text: "Sede social: Av. João XXI, 63 – 1000-300 Lisboa\n" +
				"Capital social: € 3.844.143.735,00 – NIPC 500960046 – Registo Comercial de Lisboa",
			Style: st.Body,
		},
		pdf.Spacer{Height: 20},
		pdf.Paragraph{Text: "Cliente: " + s.Name, Style: st.Client},
		pdf.Paragraph{Text: contractIntro, Style: st.Body},
		pdf.Spacer{Height: 22},
		pdf.Paragraph{Text: "Principais parâmetros do empréstimo:", Style: st.SectionHeader},
		pdf.List{Items: params, Bullet: "•", Style: st.ParamList},
		pdf.Spacer{Height: 22},
		pdf.Paragraph{Text: "Benefícios e condições especiais:", Style: st.SectionHeader},
		pdf.List{Items: contractBenefits, Bullet: "•", Style: st.ParamList},
		pdf.Spacer{Height: 22},
		pdf.Paragraph{Text: "Penalizações e juros de mora:", Style: st.SectionHeader},
		pdf.List{Items: contractPenalties, Bullet: "•", Style: st.ParamList},
		pdf.Spacer{Height: 22},
		pdf.Paragraph{Text: contractClosing, Style: st.Body},
		pdf.Spacer{Height: 22},
		pdf.Spacer{Height: 12},
		pdf.Spacer{Height: 12},
		pdf.Paragraph{Text: "Com os melhores cumprimentos,\nCaixa Geral de Depósitos", Style: st.Farewell},
		pdf.Spacer{Height: 18},
		pdf.Paragraph{Text: "Comunicações através de CubicFinance, Lda.", Style: pdf.Style{Family: "Helvetica", Weight: "B", Size: 12, Leading: 15}},
		pdf.Paragraph{
			Text:  "Todas as comunicações serão geridas por CubicFinance, Lda. Contacto: Telegram @cubic_consultor",
			Style: pdf.Style{Family: "Helvetica", Size: 12, Leading: 15, SpaceAfter: 18},
		},
		pdf.Spacer{Height: 22},
		pdf.Paragraph{
			Text:  fmt.Sprintf("Local e data: %s, %s", assets.PlaceName, now.Format("02/01/2006")),
			Style: pdf.Style{Family: "Helvetica", Size: 12, Leading: 15, SpaceAfter: 18},
		},
		pdf.Spacer{Height: 36},
		pdf.Draw{Drawable: pdf.SignatureLine{
			Label:      "Assinatura do representante da Caixa  ",
			Font:       st.Body,
			Rule:       true,
			SignPath:   assets.SignaturePath,
			SignWidth:  4 * pdf.Cm,
			SignHeight: 1.5 * pdf.Cm,
			IconPath:   assets.IconPath,
			IconHeight: 1.4 * pdf.Cm,
		}},
		pdf.Spacer{Height: 24},
		pdf.Draw{Drawable: pdf.SignatureLine{
			Label: "Assinatura do Cliente ",
			Font:  st.Body,
			Rule:  true,
		}},
		pdf.Spacer{Height: 32},
	}
}
