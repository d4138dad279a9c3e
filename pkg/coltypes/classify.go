package coltypes

import (
	"strings"
)

// rule is one entry in the classifier table. The table is evaluated
// top to bottom and the first matching rule wins, so more specific
// rules must stay above the generic column-name heuristics.
type rule struct {
	name  string
	match func(table, row, column string) bool
	typ   Type
}

// Classify maps a (table name, row name, column name) triple to the
// wire type of the column's value. It is a pure function of its
// inputs and never fails; anything unmatched is a plain string.
func Classify(table, row, column string) Type {
	for _, r := range rules {
		if r.match(table, row, column) {
			return r.typ
		}
	}
	return TypeString
}

var rules = []rule{
	// files: content-addressed blobs and their metadata.
	{"files new row", func(t, r, c string) bool {
		return t == "files" && r == "new"
	}, TypeHexBlob},
	{"files digest", func(t, r, c string) bool {
		return t == "files" && c == "digest"
	}, TypeMD5Blob},
	{"files content", func(t, r, c string) bool {
		return t == "files" && c == "content"
	}, TypeHexBlobLimited},
	{"files secure", func(t, r, c string) bool {
		return t == "files" && c == "secure"
	}, TypeSecureTristate},
	{"files status", func(t, r, c string) bool {
		return t == "files" && c == "status"
	}, TypeContentStatus},
	{"files queued", func(t, r, c string) bool {
		return t == "files" && (c == "queued" || strings.HasPrefix(r, "queue."))
	}, TypePriorityTimeString},

	// users: account rows, index rows and quota bookkeeping.
	{"users index id columns", func(t, r, c string) bool {
		return t == "users" && strings.Contains(r, "index") && strings.HasSuffix(c, ".id")
	}, TypeInt64},
	{"users index rows", func(t, r, c string) bool {
		return t == "users" && strings.Contains(r, "index")
	}, TypeString},
	{"users quota used", func(t, r, c string) bool {
		return t == "users" && c == "quota.used"
	}, TypeInt64},
	{"users quota limit", func(t, r, c string) bool {
		return t == "users" && c == "quota.limit"
	}, TypeInt64},
	{"users ratio", func(t, r, c string) bool {
		return t == "users" && c == "ratio"
	}, TypeFloat64},
	{"users score", func(t, r, c string) bool {
		return t == "users" && c == "score"
	}, TypeFloat64OrEmpty},
	{"users rights", func(t, r, c string) bool {
		return t == "users" && (c == "rights" || strings.HasSuffix(c, ".rights"))
	}, TypeRightsValue},

	// list / listref: membership and cross references. Counters sit
	// above the member rule so that member.count stays numeric.
	{"list counters", func(t, r, c string) bool {
		return (t == "list" || t == "listref") && strings.HasSuffix(c, ".count")
	}, TypeUint32},
	{"list members", func(t, r, c string) bool {
		return (t == "list" || t == "listref") && strings.HasPrefix(c, "member.")
	}, TypeTimeMicrosString},
	{"listref refs", func(t, r, c string) bool {
		return (t == "list" || t == "listref") && strings.HasPrefix(c, "ref.")
	}, TypeHexBlob},

	// firewall: hit counters and expiry times.
	{"firewall hits", func(t, r, c string) bool {
		return t == "firewall" && c == "hits"
	}, TypeUint64},
	{"firewall mask", func(t, r, c string) bool {
		return t == "firewall" && c == "mask"
	}, TypeUint32},
	{"firewall expiry", func(t, r, c string) bool {
		return t == "firewall" && strings.HasPrefix(c, "expire.")
	}, TypeTimeSeconds},

	// emails: message envelope metadata.
	{"emails received", func(t, r, c string) bool {
		return t == "emails" && (c == "received" || c == "sent")
	}, TypeTimeMicros},
	{"emails size", func(t, r, c string) bool {
		return t == "emails" && c == "size"
	}, TypeUint32},
	{"emails flags", func(t, r, c string) bool {
		return t == "emails" && c == "flags"
	}, TypeUint8},
	{"emails checksum", func(t, r, c string) bool {
		return t == "emails" && c == "checksum"
	}, TypeMD5Blob},

	// Generic column-name heuristics, any table.
	{"micros suffix", suffixAny(".utime", "_utime"), TypeTimeMicros},
	{"seconds suffix", suffixAny(".time", "_time", ".date", "_date"), TypeTimeSeconds},
	{"count suffix", suffixAny(".count", "_count"), TypeUint32},
	{"id suffix", suffixAny(".id", "_id"), TypeUint64},
	{"flag suffix", suffixAny(".flag", "_flag"), TypeInt8},
	{"md5 suffix", suffixAny(".md5"), TypeMD5Blob},
	{"binary prefix", func(t, r, c string) bool {
		return strings.HasPrefix(c, "bin.")
	}, TypeHexBlobLimited},
	{"rights suffix", suffixAny(".rights"), TypeRightsValue},
}

func suffixAny(suffixes ...string) func(t, r, c string) bool {
	return func(t, r, c string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(c, s) {
				return true
			}
		}
		return false
	}
}
