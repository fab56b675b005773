// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentTemplate is the predicate function for agenttemplate builders.
type AgentTemplate func(*sql.Selector)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// CodeExecution is the predicate function for codeexecution builders.
type CodeExecution func(*sql.Selector)

// DeepAnalysisReport is the predicate function for deepanalysisreport builders.
type DeepAnalysisReport func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageFeedback is the predicate function for messagefeedback builders.
type MessageFeedback func(*sql.Selector)

// ModelUsage is the predicate function for modelusage builders.
type ModelUsage func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserTemplatePreference is the predicate function for usertemplatepreference builders.
type UserTemplatePreference func(*sql.Selector)
