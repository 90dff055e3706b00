package badger

import "encoding/binary"

// Key prefixes for the vector index keyspace.
const (
	indexRecordPrefix = "idxrec"
	indexMetaDimKey   = "idxmeta:dim"
)

// makeRecordKey generates a composite key for an index record.
// Format: prefix:meetingID:chunkIndex, both BigEndian so lexicographic
// iteration walks one meeting's chunks in order.
func makeRecordKey(meetingID int64, chunkIndex int) []byte {
	prefix := indexRecordPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(meetingID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunkIndex))
	return buf
}

// makeMeetingPrefix generates the key prefix covering all records of one
// meeting, used for scoped iteration.
func makeMeetingPrefix(meetingID int64) []byte {
	prefix := indexRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(meetingID))
	return buf
}

// makeAllRecordsPrefix generates the key prefix covering every index record.
func makeAllRecordsPrefix() []byte {
	return []byte(indexRecordPrefix + ":")
}
