package response

import (
	"github.com/siftlabs/sift/core/extract"
)

// RecoverPartialArray salvages usable items from a malformed or truncated
// array response. It lenient-extracts the input; when the result is an array,
// items are partitioned by itemValidator into recovered items and a skipped
// count. When lenient extraction cannot produce an array at all, the
// item-by-item extractor takes over and salvages the syntactically complete
// leading items instead.
//
// RecoverPartialArray never fails: a completely unrecoverable input yields an
// empty (non-nil) recovered set and a zero skipped count. A nil itemValidator
// accepts every item.
func RecoverPartialArray(input string, itemValidator func(any) bool) (recovered []any, skipped int) {
	var items []any
	if v, err := extract.ExtractJSON(input); err == nil {
		items, _ = v.([]any)
	}
	if items == nil {
		items = extract.ExtractArrayItems(input, 0)
	}

	recovered = make([]any, 0, len(items))
	for _, item := range items {
		if itemValidator == nil || itemValidator(item) {
			recovered = append(recovered, item)
		} else {
			skipped++
		}
	}
	return recovered, skipped
}
