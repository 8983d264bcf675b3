package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	profileTable = "player_profiles"
	answerTable  = "answer_logs"
	sessionTable = "session_stats"

	colID             = "id"
	colSequence       = "sequence"
	colTimestamp      = "timestamp"
	colSessionID      = "session_id"
	colCategory       = "category"
	colName           = "name"
	colGrade          = "grade"
	colPoints         = "points"
	colAvatar         = "avatar"
	colLanguage       = "language"
	colQuestionText   = "question_text"
	colCorrectAnswer  = "correct_answer"
	colUserAnswer     = "user_answer"
	colIsCorrect      = "is_correct"
	colDifficulty     = "difficulty"
	colStreakBefore   = "streak_before"
	colPointsAwarded  = "points_awarded"
	colCompletedAt    = "completed_at"
	colTotalQuestions = "total_questions"
	colCorrectAnswers = "correct_answers"
	colPointsEarned   = "points_earned"
)

// profileID is the primary key of the single profile row.
const profileID = 1

var (
	profileColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt},
		{Name: colName, Type: field.TypeString},
		{Name: colGrade, Type: field.TypeInt},
		{Name: colPoints, Type: field.TypeInt},
		{Name: colAvatar, Type: field.TypeString},
		{Name: colLanguage, Type: field.TypeString, Default: ""},
	}
	profileTableDef = &schema.Table{
		Name:       profileTable,
		Columns:    profileColumns,
		PrimaryKey: []*schema.Column{profileColumns[0]},
	}

	answerColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colCategory, Type: field.TypeString},
		{Name: colQuestionText, Type: field.TypeString},
		{Name: colCorrectAnswer, Type: field.TypeFloat64},
		{Name: colUserAnswer, Type: field.TypeFloat64},
		{Name: colIsCorrect, Type: field.TypeBool},
		{Name: colDifficulty, Type: field.TypeInt},
		{Name: colStreakBefore, Type: field.TypeInt},
		{Name: colPointsAwarded, Type: field.TypeInt},
	}
	answerTableDef = &schema.Table{
		Name:       answerTable,
		Columns:    answerColumns,
		PrimaryKey: []*schema.Column{answerColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerlog_timestamp", Columns: []*schema.Column{answerColumns[2]}},
			{Name: "answerlog_session_id", Columns: []*schema.Column{answerColumns[3]}},
		},
	}

	sessionColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colCompletedAt, Type: field.TypeTime},
		{Name: colCategory, Type: field.TypeString},
		{Name: colTotalQuestions, Type: field.TypeInt},
		{Name: colCorrectAnswers, Type: field.TypeInt},
		{Name: colPointsEarned, Type: field.TypeInt},
	}
	sessionTableDef = &schema.Table{
		Name:       sessionTable,
		Columns:    sessionColumns,
		PrimaryKey: []*schema.Column{sessionColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionstat_completed_at", Columns: []*schema.Column{sessionColumns[3]}},
		},
	}

	// Tables holds every table managed by the migrator.
	Tables = []*schema.Table{
		profileTableDef,
		answerTableDef,
		sessionTableDef,
	}
)
