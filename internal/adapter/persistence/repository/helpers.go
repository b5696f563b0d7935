package repository

import (
	"os"
	"strconv"
	"time"

	"gestao_terceiros/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// approvalRecordItem is the storage shape shared by every gate member
// and standalone review across the tables.

type approvalRecordItem struct {
	Role          string `dynamodbav:"role"`
	Decision      string `dynamodbav:"decision"`
	DecidedAt     string `dynamodbav:"decided_at,omitempty"`
	Justification string `dynamodbav:"justification,omitempty"`
}

func toApprovalRecordItem(r entities.ApprovalRecord) approvalRecordItem {
	return approvalRecordItem{
		Role:          string(r.Role),
		Decision:      string(r.Decision),
		DecidedAt:     fmtTime(r.DecidedAt),
		Justification: r.Justification,
	}
}

func fromApprovalRecordItem(it approvalRecordItem) entities.ApprovalRecord {
	return entities.ApprovalRecord{
		Role:          entities.Role(it.Role),
		Decision:      entities.Decision(it.Decision),
		DecidedAt:     parseTime(it.DecidedAt),
		Justification: it.Justification,
	}
}

func toGateItems(g entities.Gate) []approvalRecordItem {
	items := make([]approvalRecordItem, 0, len(g.Members))
	for _, m := range g.Members {
		items = append(items, toApprovalRecordItem(m))
	}
	return items
}

func fromGateItems(items []approvalRecordItem) entities.Gate {
	members := make([]entities.ApprovalRecord, 0, len(items))
	for _, it := range items {
		members = append(members, fromApprovalRecordItem(it))
	}
	return entities.Gate{Members: members}
}
