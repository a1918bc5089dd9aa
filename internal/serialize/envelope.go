package serialize

import (
	"github.com/opencivic/tallyengine/pipeline"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type resultEnvelope struct {
	Id string `json:"id"`
	resultDocWire
}

// MarshalResult encodes doc as Result.json (spec section 4.9, 6): the
// wire fields plus a leading "id" of the form "result:<hex64>", a
// content hash of everything else in the document.
func MarshalResult(doc pipeline.ResultDoc) ([]byte, error) {
	wire := toResultDocWire(doc)
	content, err := sonic.Marshal(wire)
	if err != nil {
		return nil, err
	}
	id := DocumentId("result", content)
	return sonic.Marshal(resultEnvelope{Id: id, resultDocWire: wire})
}

type runRecordEnvelope struct {
	Id string `json:"id"`
	runRecordWire
}

// MarshalRunRecord encodes record as RunRecord.json (spec section 6): a
// content-hash "id" (excluding the trace id, which is a random
// correlation handle, not part of the deterministic content) plus a
// freshly generated "trace_id" for log aggregation.
func MarshalRunRecord(record pipeline.RunRecord) ([]byte, error) {
	wire := toRunRecordWire(record, "")
	content, err := sonic.Marshal(wire)
	if err != nil {
		return nil, err
	}
	id := DocumentId("run_record", content)
	wire.TraceId = uuid.New().String()
	return sonic.Marshal(runRecordEnvelope{Id: id, runRecordWire: wire})
}

type frontierMapEnvelope struct {
	frontierMapWire
}

// MarshalFrontierMap encodes f as FrontierMap.json (spec section 6,
// GLOSSARY). f.Id is used as-is when the caller has already assigned one
// (frontier maps are produced by an external collaborator, per spec
// section 1); when empty, a content-hash id is assigned the same way
// MarshalResult and MarshalRunRecord do.
func MarshalFrontierMap(f pipeline.FrontierMap) ([]byte, error) {
	wire := toFrontierMapWire(f)
	if wire.Id == "" {
		content, err := sonic.Marshal(frontierMapEnvelope{frontierMapWire: wire})
		if err != nil {
			return nil, err
		}
		wire.Id = DocumentId("frontier_map", content)
	}
	return sonic.Marshal(frontierMapEnvelope{frontierMapWire: wire})
}
