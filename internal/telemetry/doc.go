// Package telemetry wraps pipeline.Run with structured logging and
// per-stage timing, the ambient observability layer spec section 5 keeps
// out of the core ("no clock... the pipeline itself is never timed from
// the inside"). RunRecord.StageTimings is left empty by pipeline.Run
// itself and is populated here, after the fact, by a Recorder that wraps
// the call.
package telemetry
