// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// PronunciationDictionariesService wraps /v1/pronunciation-dictionaries.
// Dictionaries are versioned; every rule change produces a new version, and
// downloads address a specific version as a PLS document.
type PronunciationDictionariesService struct {
	client *Client
}

// DictionaryCreateFromFileParams are the arguments for
// [PronunciationDictionariesService.CreateFromFile].
type DictionaryCreateFromFileParams struct {
	// Name of the dictionary. Required.
	Name string

	// File is the PLS lexicon to upload. Required.
	File *FilePart

	Description *string
}

// DictionaryRule is one pronunciation rule. Type is "alias" or "phoneme";
// Phoneme rules also carry the alphabet ("ipa" or "cmu").
type DictionaryRule struct {
	Type            string  `json:"type"`
	StringToReplace string  `json:"string_to_replace"`
	Alias           *string `json:"alias,omitempty"`
	Phoneme         *string `json:"phoneme,omitempty"`
	Alphabet        *string `json:"alphabet,omitempty"`
}

// DictionaryCreateFromRulesParams are the arguments for
// [PronunciationDictionariesService.CreateFromRules].
type DictionaryCreateFromRulesParams struct {
	// Name of the dictionary. Required.
	Name string

	// Rules of the initial version. Required, non-empty.
	Rules []DictionaryRule

	Description *string
}

// DictionaryListParams page [PronunciationDictionariesService.List].
type DictionaryListParams struct {
	PageSize *int
	Cursor   *string
}

// CreateFromFile uploads a PLS lexicon as a new dictionary.
func (s *PronunciationDictionariesService) CreateFromFile(ctx context.Context, params *DictionaryCreateFromFileParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "name", Reason: "must not be blank"}
	}
	if err := requireString("name", params.Name); err != nil {
		return nil, err
	}
	if err := requireReader("file", params.File); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name": params.Name,
		"file": params.File,
	}
	if params.Description != nil {
		fields["description"] = *params.Description
	}
	return s.client.postMultipart(ctx, "/v1/pronunciation-dictionaries/add-from-file", fields)
}

// CreateFromRules creates a dictionary from explicit rules.
func (s *PronunciationDictionariesService) CreateFromRules(ctx context.Context, params *DictionaryCreateFromRulesParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "name", Reason: "must not be blank"}
	}
	if err := requireString("name", params.Name); err != nil {
		return nil, err
	}
	if len(params.Rules) == 0 {
		return nil, &ArgumentError{Name: "rules", Reason: "must not be empty"}
	}

	body := Document{"name": params.Name, "rules": params.Rules}
	if params.Description != nil {
		body["description"] = *params.Description
	}
	return s.client.post(ctx, "/v1/pronunciation-dictionaries/add-from-rules", body)
}

// Get retrieves a dictionary's metadata, including its latest version.
func (s *PronunciationDictionariesService) Get(ctx context.Context, dictionaryID string) (Document, error) {
	if err := requireString("pronunciation_dictionary_id", dictionaryID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/pronunciation-dictionaries/"+pathEscape(dictionaryID), nil)
}

// List pages through the workspace's dictionaries.
func (s *PronunciationDictionariesService) List(ctx context.Context, params *DictionaryListParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setInt("page_size", params.PageSize).setString("cursor", params.Cursor)
	}
	return s.client.get(ctx, "/v1/pronunciation-dictionaries", q)
}

// AddRules appends rules, producing a new dictionary version.
func (s *PronunciationDictionariesService) AddRules(ctx context.Context, dictionaryID string, rules []DictionaryRule) (Document, error) {
	if err := requireString("pronunciation_dictionary_id", dictionaryID); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, &ArgumentError{Name: "rules", Reason: "must not be empty"}
	}
	return s.client.post(ctx, "/v1/pronunciation-dictionaries/"+pathEscape(dictionaryID)+"/add-rules", Document{
		"rules": rules,
	})
}

// RemoveRules removes rules by their string_to_replace keys, producing a
// new dictionary version.
func (s *PronunciationDictionariesService) RemoveRules(ctx context.Context, dictionaryID string, ruleStrings []string) (Document, error) {
	if err := requireString("pronunciation_dictionary_id", dictionaryID); err != nil {
		return nil, err
	}
	if len(ruleStrings) == 0 {
		return nil, &ArgumentError{Name: "rule_strings", Reason: "must not be empty"}
	}
	return s.client.post(ctx, "/v1/pronunciation-dictionaries/"+pathEscape(dictionaryID)+"/remove-rules", Document{
		"rule_strings": ruleStrings,
	})
}

// Download fetches one version of a dictionary as a PLS document.
func (s *PronunciationDictionariesService) Download(ctx context.Context, dictionaryID, versionID string) ([]byte, error) {
	if err := requireString("pronunciation_dictionary_id", dictionaryID); err != nil {
		return nil, err
	}
	if err := requireString("version_id", versionID); err != nil {
		return nil, err
	}
	return s.client.getBinary(ctx, "/v1/pronunciation-dictionaries/"+pathEscape(dictionaryID)+"/"+pathEscape(versionID)+"/download", nil)
}
