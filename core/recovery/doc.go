// Package recovery runs an ordered, pluggable chain of fallback attempts
// when primary parsing of a provider response fails outright.
//
// Each [Strategy] is an independent, self-contained salvage attempt. The
// chain exists to maximise the odds of getting some usable data, so a
// strategy that returns an error — or panics — is simply treated as a failed
// attempt and the chain continues. [StandardStrategies] yields the fixed
// default chain: the cheapest and most trustworthy path first, riskier
// fallbacks only when it fails.
package recovery
