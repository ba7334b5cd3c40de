package docent

// TurnState is the stage a session's current turn has reached.
type TurnState string

// Turn states, in the order a turn passes through them.
// Every turn starts and ends in TurnIdle, including failed ones.
const (
	TurnIdle        TurnState = "idle"
	TurnClassifying TurnState = "classifying"
	TurnExtracting  TurnState = "extracting"
	TurnIngesting   TurnState = "ingesting"
	TurnQuerying    TurnState = "querying"
	TurnPersisting  TurnState = "persisting"
)

// Outcome describes how a completed turn ended.
type Outcome string

// Turn outcomes. Each one leaves exactly one assistant message behind.
const (
	OutcomeAnswered         Outcome = "answered"
	OutcomeExtractionFailed Outcome = "extraction_failed"
	OutcomeEmptyExtraction  Outcome = "empty_extraction"
	OutcomeIngestionFailed  Outcome = "ingestion_failed"
	OutcomeQueryFailed      Outcome = "query_failed"
)
