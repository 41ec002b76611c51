package abbrev

import "maps"

// Table maps abbreviation codes to human-readable definitions. Codes are
// case-sensitive, conventionally upper-case or a digit 0-4. A user-supplied
// table replaces the default wholesale; tables are never merged.
type Table map[string]string

// leipzig is the standard abbreviation set of the Leipzig Glossing Rules.
var leipzig = Table{
	"1":     "first person",
	"2":     "second person",
	"3":     "third person",
	"A":     "agent-like argument",
	"ABL":   "ablative",
	"ABS":   "absolutive",
	"ACC":   "accusative",
	"ADJ":   "adjective",
	"ADV":   "adverb(ial)",
	"AGR":   "agreement",
	"ALL":   "allative",
	"ANTIP": "antipassive",
	"APPL":  "applicative",
	"ART":   "article",
	"AUX":   "auxiliary",
	"BEN":   "benefactive",
	"CAUS":  "causative",
	"CLF":   "classifier",
	"COM":   "comitative",
	"COMP":  "complementizer",
	"COMPL": "completive",
	"COND":  "conditional",
	"COP":   "copula",
	"CVB":   "converb",
	"DAT":   "dative",
	"DECL":  "declarative",
	"DEF":   "definite",
	"DEM":   "demonstrative",
	"DET":   "determiner",
	"DIST":  "distal",
	"DISTR": "distributive",
	"DU":    "dual",
	"DUR":   "durative",
	"ERG":   "ergative",
	"EXCL":  "exclusive",
	"F":     "feminine",
	"FOC":   "focus",
	"FUT":   "future",
	"GEN":   "genitive",
	"IMP":   "imperative",
	"INCL":  "inclusive",
	"IND":   "indicative",
	"INDF":  "indefinite",
	"INF":   "infinitive",
	"INS":   "instrumental",
	"INTR":  "intransitive",
	"IPFV":  "imperfective",
	"IRR":   "irrealis",
	"LOC":   "locative",
	"M":     "masculine",
	"N":     "neuter",
	"NEG":   "negation",
	"NMLZ":  "nominalizer",
	"NOM":   "nominative",
	"OBJ":   "object",
	"OBL":   "oblique",
	"P":     "patient-like argument",
	"PASS":  "passive",
	"PFV":   "perfective",
	"PL":    "plural",
	"POSS":  "possessive",
	"PRED":  "predicative",
	"PRF":   "perfect",
	"PROG":  "progressive",
	"PROH":  "prohibitive",
	"PROX":  "proximal",
	"PRS":   "present",
	"PST":   "past",
	"PTCP":  "participle",
	"PURP":  "purposive",
	"Q":     "question marker",
	"QUOT":  "quotative",
	"RECP":  "reciprocal",
	"REFL":  "reflexive",
	"REL":   "relative",
	"RES":   "resultative",
	"S":     "single argument",
	"SBJ":   "subject",
	"SBJV":  "subjunctive",
	"SG":    "singular",
	"TOP":   "topic",
	"TR":    "transitive",
	"VOC":   "vocative",
}

// Leipzig returns a fresh copy of the built-in Leipzig Glossing Rules
// abbreviation table.
func Leipzig() Table {
	return maps.Clone(leipzig)
}
