package service

import "github.com/smartaid/smartaid-backend/internal/model"

// mergeChecklist seeds required documents for every eligible program into the
// checklist as Pending with no timestamp. The merge is idempotent per
// program: entries that already exist are left untouched (a document marked
// Received on an earlier screening keeps its status and timestamp), and only
// documents missing from an already-tracked program are filled in.
func mergeChecklist(existing model.Checklist, eligible []model.Verdict) model.Checklist {
	if existing == nil {
		existing = make(model.Checklist)
	}

	for _, v := range eligible {
		docs, ok := existing[v.Program]
		if !ok {
			docs = make(map[string]model.DocumentEntry, len(v.RequiredDocuments))
			existing[v.Program] = docs
		}
		for _, name := range v.RequiredDocuments {
			if _, tracked := docs[name]; !tracked {
				docs[name] = model.DocumentEntry{Status: model.DocumentPending, UploadedAt: nil}
			}
		}
	}

	return existing
}
