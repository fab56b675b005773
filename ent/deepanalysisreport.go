// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/user"
)

// DeepAnalysisReport is the model entity for the DeepAnalysisReport schema.
type DeepAnalysisReport struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReportUUID holds the value of the "report_uuid" field.
	ReportUUID string `json:"report_uuid,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *int `json:"user_id,omitempty"`
	// Goal holds the value of the "goal" field.
	Goal string `json:"goal,omitempty"`
	// Status holds the value of the "status" field.
	Status deepanalysisreport.Status `json:"status,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *int `json:"duration_seconds,omitempty"`
	// DeepQuestions holds the value of the "deep_questions" field.
	DeepQuestions string `json:"deep_questions,omitempty"`
	// DeepPlan holds the value of the "deep_plan" field.
	DeepPlan string `json:"deep_plan,omitempty"`
	// Summaries holds the value of the "summaries" field.
	Summaries []string `json:"summaries,omitempty"`
	// AnalysisCode holds the value of the "analysis_code" field.
	AnalysisCode string `json:"analysis_code,omitempty"`
	// JSON-serialized figure bundles for transport
	PlotlyFigures json.RawMessage `json:"plotly_figures,omitempty"`
	// Synthesis holds the value of the "synthesis" field.
	Synthesis []string `json:"synthesis,omitempty"`
	// FinalConclusion holds the value of the "final_conclusion" field.
	FinalConclusion string `json:"final_conclusion,omitempty"`
	// HTMLReport holds the value of the "html_report" field.
	HTMLReport string `json:"html_report,omitempty"`
	// Short summary derived from the conclusion (max ~200 chars)
	ReportSummary string `json:"report_summary,omitempty"`
	// ProgressPercentage holds the value of the "progress_percentage" field.
	ProgressPercentage int `json:"progress_percentage,omitempty"`
	// StepsCompleted holds the value of the "steps_completed" field.
	StepsCompleted []string `json:"steps_completed,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ModelProvider holds the value of the "model_provider" field.
	ModelProvider *string `json:"model_provider,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// TotalTokensUsed holds the value of the "total_tokens_used" field.
	TotalTokensUsed int `json:"total_tokens_used,omitempty"`
	// EstimatedCost holds the value of the "estimated_cost" field.
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
	// CreditsConsumed holds the value of the "credits_consumed" field.
	CreditsConsumed int `json:"credits_consumed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeepAnalysisReportQuery when eager-loading is set.
	Edges        DeepAnalysisReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeepAnalysisReportEdges holds the relations/edges for other nodes in the graph.
type DeepAnalysisReportEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeepAnalysisReportEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeepAnalysisReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deepanalysisreport.FieldSummaries, deepanalysisreport.FieldPlotlyFigures, deepanalysisreport.FieldSynthesis, deepanalysisreport.FieldStepsCompleted:
			values[i] = new([]byte)
		case deepanalysisreport.FieldEstimatedCost:
			values[i] = new(sql.NullFloat64)
		case deepanalysisreport.FieldID, deepanalysisreport.FieldUserID, deepanalysisreport.FieldDurationSeconds, deepanalysisreport.FieldProgressPercentage, deepanalysisreport.FieldTotalTokensUsed, deepanalysisreport.FieldCreditsConsumed:
			values[i] = new(sql.NullInt64)
		case deepanalysisreport.FieldReportUUID, deepanalysisreport.FieldGoal, deepanalysisreport.FieldStatus, deepanalysisreport.FieldDeepQuestions, deepanalysisreport.FieldDeepPlan, deepanalysisreport.FieldAnalysisCode, deepanalysisreport.FieldFinalConclusion, deepanalysisreport.FieldHTMLReport, deepanalysisreport.FieldReportSummary, deepanalysisreport.FieldErrorMessage, deepanalysisreport.FieldModelProvider, deepanalysisreport.FieldModelName:
			values[i] = new(sql.NullString)
		case deepanalysisreport.FieldStartTime, deepanalysisreport.FieldEndTime, deepanalysisreport.FieldCreatedAt, deepanalysisreport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeepAnalysisReport fields.
func (_m *DeepAnalysisReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deepanalysisreport.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deepanalysisreport.FieldReportUUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_uuid", values[i])
			} else if value.Valid {
				_m.ReportUUID = value.String
			}
		case deepanalysisreport.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(int)
				*_m.UserID = int(value.Int64)
			}
		case deepanalysisreport.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case deepanalysisreport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deepanalysisreport.Status(value.String)
			}
		case deepanalysisreport.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case deepanalysisreport.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case deepanalysisreport.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(int)
				*_m.DurationSeconds = int(value.Int64)
			}
		case deepanalysisreport.FieldDeepQuestions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deep_questions", values[i])
			} else if value.Valid {
				_m.DeepQuestions = value.String
			}
		case deepanalysisreport.FieldDeepPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deep_plan", values[i])
			} else if value.Valid {
				_m.DeepPlan = value.String
			}
		case deepanalysisreport.FieldSummaries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summaries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Summaries); err != nil {
					return fmt.Errorf("unmarshal field summaries: %w", err)
				}
			}
		case deepanalysisreport.FieldAnalysisCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_code", values[i])
			} else if value.Valid {
				_m.AnalysisCode = value.String
			}
		case deepanalysisreport.FieldPlotlyFigures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plotly_figures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlotlyFigures); err != nil {
					return fmt.Errorf("unmarshal field plotly_figures: %w", err)
				}
			}
		case deepanalysisreport.FieldSynthesis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Synthesis); err != nil {
					return fmt.Errorf("unmarshal field synthesis: %w", err)
				}
			}
		case deepanalysisreport.FieldFinalConclusion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_conclusion", values[i])
			} else if value.Valid {
				_m.FinalConclusion = value.String
			}
		case deepanalysisreport.FieldHTMLReport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field html_report", values[i])
			} else if value.Valid {
				_m.HTMLReport = value.String
			}
		case deepanalysisreport.FieldReportSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_summary", values[i])
			} else if value.Valid {
				_m.ReportSummary = value.String
			}
		case deepanalysisreport.FieldProgressPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percentage", values[i])
			} else if value.Valid {
				_m.ProgressPercentage = int(value.Int64)
			}
		case deepanalysisreport.FieldStepsCompleted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps_completed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepsCompleted); err != nil {
					return fmt.Errorf("unmarshal field steps_completed: %w", err)
				}
			}
		case deepanalysisreport.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case deepanalysisreport.FieldModelProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_provider", values[i])
			} else if value.Valid {
				_m.ModelProvider = new(string)
				*_m.ModelProvider = value.String
			}
		case deepanalysisreport.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case deepanalysisreport.FieldTotalTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens_used", values[i])
			} else if value.Valid {
				_m.TotalTokensUsed = int(value.Int64)
			}
		case deepanalysisreport.FieldEstimatedCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost", values[i])
			} else if value.Valid {
				_m.EstimatedCost = value.Float64
			}
		case deepanalysisreport.FieldCreditsConsumed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_consumed", values[i])
			} else if value.Valid {
				_m.CreditsConsumed = int(value.Int64)
			}
		case deepanalysisreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deepanalysisreport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeepAnalysisReport.
// This includes values selected through modifiers, order, etc.
func (_m *DeepAnalysisReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the DeepAnalysisReport entity.
func (_m *DeepAnalysisReport) QueryUser() *UserQuery {
	return NewDeepAnalysisReportClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this DeepAnalysisReport.
// Note that you need to call DeepAnalysisReport.Unwrap() before calling this method if this DeepAnalysisReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeepAnalysisReport) Update() *DeepAnalysisReportUpdateOne {
	return NewDeepAnalysisReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeepAnalysisReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeepAnalysisReport) Unwrap() *DeepAnalysisReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeepAnalysisReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeepAnalysisReport) String() string {
	var builder strings.Builder
	builder.WriteString("DeepAnalysisReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_uuid=")
	builder.WriteString(_m.ReportUUID)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deep_questions=")
	builder.WriteString(_m.DeepQuestions)
	builder.WriteString(", ")
	builder.WriteString("deep_plan=")
	builder.WriteString(_m.DeepPlan)
	builder.WriteString(", ")
	builder.WriteString("summaries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Summaries))
	builder.WriteString(", ")
	builder.WriteString("analysis_code=")
	builder.WriteString(_m.AnalysisCode)
	builder.WriteString(", ")
	builder.WriteString("plotly_figures=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlotlyFigures))
	builder.WriteString(", ")
	builder.WriteString("synthesis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synthesis))
	builder.WriteString(", ")
	builder.WriteString("final_conclusion=")
	builder.WriteString(_m.FinalConclusion)
	builder.WriteString(", ")
	builder.WriteString("html_report=")
	builder.WriteString(_m.HTMLReport)
	builder.WriteString(", ")
	builder.WriteString("report_summary=")
	builder.WriteString(_m.ReportSummary)
	builder.WriteString(", ")
	builder.WriteString("progress_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercentage))
	builder.WriteString(", ")
	builder.WriteString("steps_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepsCompleted))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelProvider; v != nil {
		builder.WriteString("model_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokensUsed))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCost))
	builder.WriteString(", ")
	builder.WriteString("credits_consumed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsConsumed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeepAnalysisReports is a parsable slice of DeepAnalysisReport.
type DeepAnalysisReports []*DeepAnalysisReport
