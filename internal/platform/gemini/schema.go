package gemini

import "google.golang.org/genai"

var verseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"sanskrit":        {Type: genai.TypeString, Description: "The Sanskrit shloka text in Devanagari script."},
		"transliteration": {Type: genai.TypeString, Description: "The English transliteration of the shloka."},
		"translation":     {Type: genai.TypeString, Description: "The translation of the verse in the requested language."},
		"meaning":         {Type: genai.TypeString, Description: "A concise explanation of the verse's meaning and context in the requested language."},
	},
	Required: []string{"sanskrit", "transliteration", "translation", "meaning"},
}

var searchSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"chapter":     {Type: genai.TypeNumber, Description: "The chapter number of the verse."},
			"verse":       {Type: genai.TypeNumber, Description: "The verse number."},
			"sanskrit":    {Type: genai.TypeString, Description: "The Sanskrit text of the verse."},
			"translation": {Type: genai.TypeString, Description: "The translation of the verse in the requested language."},
		},
		Required: []string{"chapter", "verse", "sanskrit", "translation"},
	},
}
