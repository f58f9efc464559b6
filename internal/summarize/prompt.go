// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// studyGuidePrompt asks the model to expand lecture material into a study
// guide rather than summarize it.
var studyGuidePrompt = template.Must(template.New("study-guide").Parse(`You are a distinguished expert and author in the field of distributed systems, with deep knowledge of system architecture, concurrency, consensus, and fault tolerance. Your task is to analyze the following lecture material and expand it into a comprehensive study guide.

Your goal is to add significant value and clarity. Do not merely summarize the text. Instead, for each major concept presented, you must:

- **Provide Expert Explanations**: Deconstruct complex topics (e.g., CAP Theorem, Paxos/Raft, replication, sharding) into clear, intuitive explanations. Use analogies to make them easier to understand for a software engineer new to the field.

- **Cite Real-World Examples**: Illustrate the concepts with specific, practical examples from well-known, large-scale systems. Reference systems like Google's Spanner, Amazon's DynamoDB, LinkedIn's Kafka deployments, or Facebook's Cassandra usage where appropriate.

- **Create Numerical Problems**: For key performance or theoretical concepts (like availability, latency, or consensus), you must **create and solve a relevant numerical problem** or quantitative example. For instance:
    - If discussing **availability**, calculate system uptime for "five nines" vs. "three nines."
    - If discussing **latency**, create a problem calculating round-trip time in a geo-distributed setting.
    - If discussing **consensus algorithms** like Raft, calculate the quorum size needed for a cluster of a given size.

- **Analyze Trade-offs**: Discuss the inherent trade-offs associated with each concept. For example, explain the consistency vs. availability trade-off in the CAP theorem or the performance implications of different consistency models.

Structure the final output as a professional study guide using Markdown. Use headings, bullet points, bold text for key terms, and code blocks for configuration snippets or pseudo-code.

Lecture Content:
{{.Content}}`))

// LoadPrompt parses a prompt template file. The template receives the
// lecture text as {{.Content}}.
func LoadPrompt(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prompt file %s: %w", path, err)
	}
	t, err := template.New(path).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing prompt file %s: %w", path, err)
	}
	return t, nil
}

func render(t *template.Template, content string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, struct{ Content string }{Content: content}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
