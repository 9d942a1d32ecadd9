package commission

import (
	"bytes"
	"strconv"

	"github.com/google/uuid"
)

const csvSeparator = ";"

// StatementCSV renders a statement's enriched proposal list as a
// semicolon-separated sheet for download. leadNames maps lead IDs to company
// names; unknown leads render as N/A, like empty document identifiers.
func StatementCSV(st Statement, leadNames map[uuid.UUID]string) []byte {
	var buf bytes.Buffer

	writeRow(&buf, []string{"Vendedor", "Lead", "Documento", "Valor USD", "Lucro Estimado", "Comissao"})
	for _, item := range st.Itens {
		lead := leadNames[item.Proposal.LeadID]
		if lead == "" {
			lead = "N/A"
		}
		doc := item.Proposal.CrtIdentifier
		if doc == "" {
			doc = "N/A"
		}
		writeRow(&buf, []string{
			st.Vendedor.FullName,
			lead,
			doc,
			formatAmount(item.Proposal.FreteDolar),
			formatAmount(item.Lucro),
			formatAmount(item.Comissao),
		})
	}

	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(csvSeparator)
		}
		buf.WriteString(f)
	}
	buf.WriteByte('\n')
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
