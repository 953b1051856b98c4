package domain

import (
	"slices"
	"strings"
)

// Section identifies one of the four questionnaires.
type Section string

const (
	SectionCapacity  Section = "CAPACITY"
	SectionCharacter Section = "CHARACTER"
	SectionCapital   Section = "CAPITAL"
	SectionCondition Section = "CONDITION"
)

// Sections lists every questionnaire section.
var Sections = []Section{SectionCapacity, SectionCharacter, SectionCapital, SectionCondition}

// ParseSection resolves a section name, ignoring case.
func ParseSection(s string) (Section, bool) {
	sec := Section(strings.ToUpper(strings.TrimSpace(s)))
	if slices.Contains(Sections, sec) {
		return sec, true
	}
	return "", false
}

// QuestionKey identifies a question within a section (q1, q2, ...).
type QuestionKey string

// Grade is a letter answer or a graded result.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// AnswerSet maps question keys to the selected letter. Unanswered keys are absent.
type AnswerSet map[QuestionKey]Grade

// GradeScore is a letter grade with its numeric score.
type GradeScore struct {
	Grade Grade   `json:"grade"`
	Score float64 `json:"score"`
}

// AnswerOption is one selectable answer for a question.
type AnswerOption struct {
	Grade Grade  `json:"grade"`
	Label string `json:"label"`
}

// Question is the presentation side of a questionnaire item. Scoring weights
// are not part of it; they belong to the scoring policy.
type Question struct {
	Key     QuestionKey    `json:"key"`
	Prompt  string         `json:"prompt"`
	Options []AnswerOption `json:"options"`
}

// Offers reports whether g is one of the question's options.
func (q Question) Offers(g Grade) bool {
	for _, opt := range q.Options {
		if opt.Grade == g {
			return true
		}
	}
	return false
}

func abc(a, b, c string) []AnswerOption {
	return []AnswerOption{{GradeA, "A: " + a}, {GradeB, "B: " + b}, {GradeC, "C: " + c}}
}

var questionnaire = map[Section][]Question{
	SectionCapacity: {
		{Key: "q1", Prompt: "Pengalaman Terhadap Jenis Pekerjaan", Options: abc(">4 proyek", "1-4 proyek", "Belum pernah")},
		{Key: "q2", Prompt: "Tenaga Ahli sesuai proyek", Options: abc(">5 orang", "2-5 orang", "<2 orang")},
		{Key: "q3", Prompt: "Proyek Lain yang Sedang Dikerjakan", Options: abc("Tidak ada", "1-2 proyek", ">2 proyek")},
		{Key: "q4", Prompt: "Peralatan Untuk Mengerjakan Proyek", Options: abc("Cukup, Milik sendiri", "Milik + Sewa", "Sewa")},
	},
	SectionCharacter: {
		{Key: "q1", Prompt: "Lama Operasional Usaha", Options: abc("> 10 tahun", "5-10 tahun", "<5 tahun")},
		{Key: "q2", Prompt: "Hubungan dengan Obligee", Options: abc(">2 Obligee", "2 Obligee", "1 Obligee")},
		{Key: "q3", Prompt: "Lama Berhubungan dengan Obligee", Options: abc("> 5 tahun", "2-5 tahun", "<2 tahun")},
		{Key: "q4", Prompt: "Indemnity Agreement", Options: []AnswerOption{{GradeA, "A: Dirut"}, {GradeB, "B: Surat Kuasa"}}},
		{Key: "q5", Prompt: "Legalitas Indemnity Agreement", Options: abc("Notariil", "Bermaterai", "Tidak Bermaterai")},
	},
	SectionCapital: {
		{Key: "q1", Prompt: "Ratio Likuiditas (Aktiva Lancar/Kewajiban Lancar)", Options: abc("Baik (>120%)", "Cukup (100-120%)", "Kurang (<100%)")},
		{Key: "q2", Prompt: "Ratio Rentabilitas (Laba/Ekuitas)", Options: abc("Profit Tinggi", "Profit Sedang", "Rugi/Kecil")},
		{Key: "q3", Prompt: "Ratio Solvabilitas (Total Kewajiban/Ekuitas)", Options: abc("Sehat (<100%)", "Wajar (100-200%)", "Berisiko (>200%)")},
		{Key: "q4", Prompt: "Ekuitas vs Nilai Proyek", Options: abc("Kuat", "Cukup", "Lemah")},
		{Key: "q5", Prompt: "Audit Laporan Keuangan", Options: abc("Auditor Terdaftar", "Non Audit", "Tidak Ada")},
		{Key: "q6", Prompt: "Sumber Dana Pelaksanaan", Options: abc("Sendiri + Luar", "Sendiri", "Dana Luar")},
	},
	SectionCondition: {
		{Key: "q1", Prompt: "Jenis Pekerjaan", Options: abc("Mudah", "Sedang", "Sulit")},
		{Key: "q2", Prompt: "Periode Kontrak Proyek", Options: abc("<1 tahun", "s/d 1 tahun", ">1 tahun")},
		{Key: "q3", Prompt: "Lokasi Proyek vs Kantor", Options: abc("Provinsi sama", "Provinsi lain", "Luar Negeri")},
		{Key: "q4", Prompt: "Supply Bahan Baku", Options: abc("Lokal", "Campuran", "Luar")},
	},
}

// Questions returns the questionnaire for a section in display order.
func Questions(section Section) []Question {
	return slices.Clone(questionnaire[section])
}

// LookupQuestion finds a question by section and key.
func LookupQuestion(section Section, key QuestionKey) (Question, bool) {
	for _, q := range questionnaire[section] {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}
