package extractor

import (
	"fmt"
	"strings"
)

// promptTemplate is the fixed instruction block sent ahead of the statement
// text. It pins the model to the treasury role, the reporting period, the
// taxonomy, and the exact JSON shape; everything after it is statement data.
const promptTemplate = `Você é o assistente contábil da Tesouraria do ECC - Paróquia N. Sra. das Dores (Guaxupé).
Analise o extrato bancário abaixo, referente ao período de %s a %s.

Classifique cada lançamento em uma das categorias conhecidas:
%s

E em um dos projetos/eventos:
%s

Retorne APENAS um objeto JSON, sem comentários e sem texto fora do JSON:
{
  "saldoInicial": 0.00,
  "saldoFinal": 0.00,
  "lista": [
    { "data": "DD/MM", "item": "string", "valor": 0.00, "tipo": "E" ou "S", "cat": "string", "proj": "string", "obs": "string opcional" }
  ]
}

Regras:
- "valor" é sempre a magnitude positiva; a direção vai em "tipo" ("E" entrada, "S" saída).
- Use "Outros" quando não houver categoria ou projeto adequado.
- Omita "saldoInicial"/"saldoFinal" se o extrato não os informar.
- Não use cercas de código (sem markdown).`

// BuildPrompt assembles the instruction text for one extraction request.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(promptTemplate,
		req.From,
		req.To,
		"- "+strings.Join(req.Categories, "\n- "),
		"- "+strings.Join(req.Projects, "\n- "),
	)
}
