package lf

import "go.uber.org/zap"

const (
	FieldModule       = "module"
	FieldFlagID       = "flag_id"
	FieldDraftID      = "draft_id"
	FieldSubmissionID = "submission_id"
	FieldStep         = "step"
	FieldReportType   = "report_type"
	FieldEmail        = "email"
	FieldQuery        = "query"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func FlagID(ID int) zap.Field {
	return zap.Int(FieldFlagID, ID)
}

func DraftID(ID string) zap.Field {
	return zap.String(FieldDraftID, ID)
}

func SubmissionID(ID string) zap.Field {
	return zap.String(FieldSubmissionID, ID)
}

func Step(step int) zap.Field {
	return zap.Int(FieldStep, step)
}

func ReportType(reportType string) zap.Field {
	return zap.String(FieldReportType, reportType)
}

func Email(email string) zap.Field {
	return zap.String(FieldEmail, email)
}

func Query(query string) zap.Field {
	return zap.String(FieldQuery, query)
}
