package Database

import (
	"strings"

	"Workshop/Models"
)

// Service type buckets. A work order belongs to a bucket when any of the
// bucket's keywords appears in its combined line item text. The buckets are
// not exclusive and are never stored; they are recomputed per query.
var (
	PreventiveKeywords = []string{"oil", "filter", "rotate", "rotation", "align", "alignment", "battery", "coolant", "maintenance", "service", "flush", "tune"}
	CorrectiveKeywords = []string{"repair", "replace", "fix", "leak", "broken", "failure", "install", "adjust", "calibrate"}
	InspectionKeywords = []string{"inspect", "inspection", "diagnos", "check", "test", "evaluate"}
)

var serviceTypeKeywords = map[string][]string{
	"preventive": PreventiveKeywords,
	"corrective": CorrectiveKeywords,
	"inspection": InspectionKeywords,
}

// ClassifyServiceText returns the buckets matching the given line item text.
func ClassifyServiceText(text string) []string {
	text = strings.ToLower(text)
	types := []string{}
	for _, bucket := range []struct {
		label    string
		keywords []string
	}{
		{"Preventive", PreventiveKeywords},
		{"Corrective", CorrectiveKeywords},
		{"Inspection", InspectionKeywords},
	} {
		for _, kw := range bucket.keywords {
			if strings.Contains(text, kw) {
				types = append(types, bucket.label)
				break
			}
		}
	}
	return types
}

func lineItemText(services []Models.Service, parts []Models.SparePart) string {
	var b strings.Builder
	for _, svc := range services {
		b.WriteString(svc.Name)
		b.WriteString(" ")
		b.WriteString(svc.Description)
		b.WriteString(" ")
	}
	for _, part := range parts {
		b.WriteString(part.Name)
		b.WriteString(" ")
		b.WriteString(part.Description)
		b.WriteString(" ")
	}
	return b.String()
}

// predicate is one WHERE clause fragment with its parameters. Fragments are
// joined by AND in the order they were added.
type predicate struct {
	expr string
	args []interface{}
}

// lineItemTextExpr concatenates every searchable line item column of the
// outer-joined services and spare parts rows.
const lineItemTextExpr = "LOWER(COALESCE(s.name,'') || ' ' || COALESCE(s.description,'') || ' ' || COALESCE(p.name,'') || ' ' || COALESCE(p.description,''))"

// FilterWorkOrders returns the orders matching every given criterion. All
// three are optional; with none set this is the plain full listing. Orders
// with matching line items appear once thanks to DISTINCT, and orders without
// any line items are still reachable through the customer name match.
func (s *Store) FilterWorkOrders(keyword, serviceType, status string) ([]Models.WorkOrderRow, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	serviceType = strings.ToLower(strings.TrimSpace(serviceType))
	status = strings.TrimSpace(status)

	var predicates []predicate

	if keyword != "" {
		kw := "%" + keyword + "%"
		predicates = append(predicates, predicate{
			expr: `(LOWER(c.name) LIKE ?
				OR LOWER(COALESCE(s.name,'')) LIKE ?
				OR LOWER(COALESCE(s.description,'')) LIKE ?
				OR LOWER(COALESCE(p.name,'')) LIKE ?
				OR LOWER(COALESCE(p.description,'')) LIKE ?)`,
			args: []interface{}{kw, kw, kw, kw, kw},
		})
	}

	if keywords, ok := serviceTypeKeywords[serviceType]; ok {
		var clauses []string
		var args []interface{}
		for _, kw := range keywords {
			clauses = append(clauses, lineItemTextExpr+" LIKE ?")
			args = append(args, "%"+kw+"%")
		}
		predicates = append(predicates, predicate{
			expr: "(" + strings.Join(clauses, " OR ") + ")",
			args: args,
		})
	}

	if status != "" {
		predicates = append(predicates, predicate{expr: "wo.status = ?", args: []interface{}{status}})
	}

	var conditions []string
	var params []interface{}
	for _, p := range predicates {
		conditions = append(conditions, p.expr)
		params = append(params, p.args...)
	}

	where := ""
	if len(conditions) > 0 {
		where = "\n\t\tWHERE " + strings.Join(conditions, "\n\t\tAND ")
	}

	query := `SELECT DISTINCT ` + workOrderColumns + workOrderJoins + `
		LEFT JOIN services s ON s.work_order_id = wo.id
		LEFT JOIN spare_parts p ON p.work_order_id = wo.id` + where + `
		ORDER BY wo.entry_date DESC`

	var rows []Models.WorkOrderRow
	err := s.DB.Raw(query, params...).Scan(&rows).Error
	return rows, err
}

// SearchWorkOrders is the keyword-only form of FilterWorkOrders.
func (s *Store) SearchWorkOrders(keyword string) ([]Models.WorkOrderRow, error) {
	return s.FilterWorkOrders(keyword, "", "")
}
