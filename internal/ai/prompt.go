package ai

import (
	"fmt"
	"strings"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
)

const systemPrompt = "You are an experienced grant writer. Give concise, practical suggestions " +
	"that help a non-profit organization strengthen its grant proposal. Answer in plain text " +
	"as a short numbered list, without markdown headings."

// buildGrantPrompt формирует пользовательский промпт из проверенного черновика.
func buildGrantPrompt(req entity.GrantRequest) string {
	var b strings.Builder

	b.WriteString("Review the grant application below and suggest up to five concrete improvements.\n\n")

	b.WriteString("ORGANIZATION:\n")
	writeLine(&b, "Name", req.OrganizationName)
	writeLine(&b, "Website", req.Website)
	writeLine(&b, "Mission", req.Mission)
	writeLine(&b, "Location", req.Location)
	writeLine(&b, "Sector", req.Sector)

	b.WriteString("\nGRANT:\n")
	writeLine(&b, "Title", req.GrantTitle)
	writeLine(&b, "Funding amount", req.FundingAmount)
	writeLine(&b, "Purpose", req.Purpose)

	b.WriteString("\nPROJECT:\n")
	writeLine(&b, "Description", req.ProjectDescription)
	writeLine(&b, "Expected outcomes", req.ExpectedOutcomes)
	writeLine(&b, "Timeline", req.Timeline)
	writeLine(&b, "Evaluation plan", req.EvaluationPlan)

	// Контакты в промпт не передаём.
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}
