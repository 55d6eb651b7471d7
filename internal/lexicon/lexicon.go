// Package lexicon holds the static word lists and patterns shared by the
// quality gate, the rule engine and the metrics engine. Keeping them as plain
// data tables keeps the scoring algorithms free of embedded vocabulary and
// lets the lists be tested and extended on their own.
package lexicon

import "regexp"

// CommonWords is the recognition dictionary used by the gibberish check:
// English function words plus frequent customer-service terms. A response
// where fewer than a quarter of tokens appear here is treated as gibberish.
var CommonWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "shall": true, "can": true,
	"need": true, "must": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
	"me": true, "him": true, "her": true, "us": true, "them": true,
	"my": true, "your": true, "his": true, "its": true, "our": true,
	"their": true, "this": true, "that": true, "these": true,
	"those": true, "what": true, "which": true, "who": true, "whom": true,
	"where": true, "when": true, "why": true, "how": true,
	"not": true, "no": true, "yes": true, "all": true, "each": true,
	"every": true, "both": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "any": true, "many": true,
	"much": true, "such": true, "than": true, "too": true,
	"very": true, "just": true, "also": true, "now": true, "here": true,
	"there": true, "then": true, "so": true, "if": true,
	"or": true, "and": true, "but": true, "nor": true, "for": true,
	"yet": true, "about": true, "above": true, "after": true,
	"before": true, "between": true, "by": true, "from": true, "in": true,
	"into": true, "of": true, "on": true, "to": true,
	"up": true, "with": true, "as": true, "at": true, "out": true,
	"off": true, "over": true, "under": true, "again": true,
	"help": true, "please": true, "thank": true, "sorry": true,
	"understand": true, "refund": true, "order": true,
	"account": true, "customer": true, "service": true, "support": true,
	"issue": true, "problem": true,
	"information": true, "request": true, "review": true, "process": true,
	"policy": true, "team": true,
	"manager": true, "supervisor": true, "escalate": true, "product": true,
	"return": true, "exchange": true,
	"contact": true, "call": true, "email": true, "number": true,
	"time": true, "day": true, "business": true,
	"like": true, "want": true, "know": true, "get": true, "make": true,
	"go": true, "see": true, "come": true, "take": true,
	"give": true, "tell": true, "ask": true, "work": true, "try": true,
	"let": true, "keep": true, "think": true, "feel": true,
}

// RudeWords trips the tone dimension on any case-insensitive substring hit.
var RudeWords = []string{
	"stupid", "idiot", "dumb", "ridiculous", "pathetic", "useless",
	"shut up", "go away",
}

// HallucinationMarkers are authoritative-sounding phrases that, in a short
// response, suggest fabricated claims.
var HallucinationMarkers = []string{
	"our new policy", "we recently changed", "according to our",
	"our system shows", "internal records",
}

// StructureMarkers are transition words rewarded by the coherence score.
var StructureMarkers = []string{
	"first", "second", "additionally", "however", "therefore",
	"because", "in order to", "as a result", "please", "next",
	"also", "furthermore", "meanwhile", "consequently", "finally",
}

// EmpathyWords are phrases rewarded by the empathy score.
var EmpathyWords = []string{
	"understand", "sorry", "apologize", "appreciate", "concern",
	"frustrating", "inconvenience", "happy to help", "certainly",
	"of course", "absolutely", "glad", "here to help", "i'm sorry",
	"thank you", "valued", "important to us", "i can see", "must be",
}

// ColdWords are dismissive terms penalized by the empathy score.
var ColdWords = []string{"denied", "impossible", "refuse", "rejected", "never"}

// ActionWords are actionable phrases rewarded by the clarity score.
var ActionWords = []string{
	"please", "you can", "steps", "follow", "click", "call", "email",
	"visit", "contact",
}

// JargonPhrases are penalized by the clarity score.
var JargonPhrases = []string{
	"per our policy", "hereunder", "herein", "aforementioned", "notwithstanding",
}

// ProfessionalMarkers are rewarded by the professionalism score.
var ProfessionalMarkers = []string{
	"please", "thank", "would", "could", "happy", "assist", "support",
	"team", "sincerely", "regards",
}

// CasualWords are slang terms penalized heavily by the professionalism score.
var CasualWords = []string{
	"dude", "bro", "lol", "omg", "whatever", "idk", "tbh", "smh",
	"wtf", "lmao", "bruh",
}

// PositiveWords and NegativeWords drive the sentiment balance.
var PositiveWords = []string{
	"help", "happy", "great", "thank", "appreciate", "glad", "pleased",
	"wonderful", "excellent", "welcome",
}

var NegativeWords = []string{
	"unfortunately", "unable", "cannot", "issue", "problem", "frustrat",
	"complain", "error", "fail", "wrong",
}

var (
	// Greeting and Signoff mark the professional frame of a response.
	Greeting = regexp.MustCompile(`(?i)\b(hello|hi|dear|good morning|good afternoon)\b`)
	Signoff  = regexp.MustCompile(`(?i)\b(regards|sincerely|best|thank you|thanks)\b`)

	// The professionalism metric frames responses with slightly wider
	// greeting and sign-off vocabularies than the quality scorer.
	ProfessionalGreeting = regexp.MustCompile(`(?i)\b(hello|hi|dear|good morning|good afternoon|good evening)\b`)
	ProfessionalSignoff  = regexp.MustCompile(`(?i)\b(regards|sincerely|best wishes|thank you|thanks for)\b`)

	// Acknowledgment and OfferOfHelp are the empathy pattern bonuses.
	Acknowledgment = regexp.MustCompile(`(?i)i understand|i can see|that must|i hear you`)
	OfferOfHelp    = regexp.MustCompile(`(?i)let me|i'd like to|i can|we can|happy to|here to help`)

	// Directness rewards responses that tell the customer what happens next.
	Directness = regexp.MustCompile(`(?i)here's what|what you can do|next step`)

	// TimeDuration matches concrete time spans such as "2 business days".
	TimeDuration = regexp.MustCompile(`(?i)\d+\s*(day|hour|minute|business)`)

	// EmpathyFallback is the generic rule set's empathy probe.
	EmpathyFallback = regexp.MustCompile(`(?i)sorry|apolog|understand|unfortunate`)

	// AllCapsWord flags shouting in the original-cased text.
	AllCapsWord = regexp.MustCompile(`\b[A-Z]{4,}\b`)
)
