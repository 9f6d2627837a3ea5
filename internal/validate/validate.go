// Package validate collects client-side form checks run before any mutation
// call goes over the wire.
package validate

import (
	"regexp"
	"sort"
	"strings"
)

// Vietnamese mobile numbers: +84 or leading 0, then a 9-digit subscriber
// number starting with 3/5/7/8/9.
var phoneVN = regexp.MustCompile(`^(?:\+84|0)(?:3|5|7|8|9)[0-9]{8}$`)

type Issue struct {
	Field  string
	Reason string
}

type Validator struct {
	issues []Issue
}

func New() *Validator {
	return &Validator{issues: make([]Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, Issue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) PositiveID(field string, id int) {
	if id <= 0 {
		v.Add(field, "must be a positive integer")
	}
}

func (v *Validator) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	at := strings.Index(value, "@")
	dot := strings.LastIndex(value, ".")
	if at <= 0 || dot < at+2 || dot == len(value)-1 {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Validator) PhoneVN(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if !IsPhoneVN(value) {
		v.Add(field, "must be a valid Vietnamese phone number")
	}
}

// RequiredPhoneVN rejects both empty and malformed numbers.
func (v *Validator) RequiredPhoneVN(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
		return
	}
	v.PhoneVN(field, value)
}

func (v *Validator) NonNegative(field string, value float64) {
	if value < 0 {
		v.Add(field, "must not be negative")
	}
}

func IsPhoneVN(value string) bool {
	return phoneVN.MatchString(strings.TrimSpace(value))
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []Issue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Message flattens the issues into one toast-sized line.
func (v *Validator) Message() string {
	issues := v.Issues()
	if len(issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return strings.Join(parts, "; ")
}
