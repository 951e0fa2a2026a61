package shortcut

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"howett.net/plist"
)

// Top-level document keys in the Shortcuts workflow format
const (
	keyActions                 = "WFWorkflowActions"
	keyIcon                    = "WFWorkflowIcon"
	keyIconGlyphNumber         = "WFWorkflowIconGlyphNumber"
	keyIconStartColor          = "WFWorkflowIconStartColor"
	keyMinClientVersion        = "WFWorkflowMinimumClientVersion"
	keyMinClientVersionString  = "WFWorkflowMinimumClientVersionString"
	keyClientVersion           = "WFWorkflowClientVersion"
	keyClientRelease           = "WFWorkflowClientRelease"
	keyInputContentItemClasses = "WFWorkflowInputContentItemClasses"
	keyWorkflowTypes           = "WFWorkflowTypes"
	keyImportQuestions         = "WFWorkflowImportQuestions"
	keyName                    = "WFWorkflowName"

	keyActionIdentifier = "WFWorkflowActionIdentifier"
	keyActionParameters = "WFWorkflowActionParameters"

	keyQuestionActionIndex  = "ActionIndex"
	keyQuestionParameterKey = "ParameterKey"
	keyQuestionCategory     = "Category"
	keyQuestionDefaultValue = "DefaultValue"
	keyQuestionText         = "Text"
)

// Marshal serializes a document to the binary plist workflow format
func Marshal(doc *Document) ([]byte, error) {
	root := map[string]interface{}{
		keyActions: encodeActions(doc.Actions),
		keyIcon: map[string]interface{}{
			keyIconGlyphNumber: doc.Icon.GlyphNumber,
			keyIconStartColor:  uint64(doc.Icon.StartColor),
		},
		keyMinClientVersion:        doc.MinimumClientVersion,
		keyMinClientVersionString:  doc.MinimumClientVersionString,
		keyClientVersion:           doc.ClientVersion,
		keyInputContentItemClasses: doc.InputContentItemClasses,
		keyWorkflowTypes:           doc.WorkflowTypes,
	}

	if doc.Name != "" {
		root[keyName] = doc.Name
	}
	if doc.ClientRelease != "" {
		root[keyClientRelease] = doc.ClientRelease
	}
	// The import questions key is entirely absent when no questions are
	// configured, never an empty list
	if len(doc.ImportQuestions) > 0 {
		root[keyImportQuestions] = encodeImportQuestions(doc.ImportQuestions)
	}

	var buf bytes.Buffer
	encoder := plist.NewEncoderForFormat(&buf, plist.BinaryFormat)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrEncodingFailed, err.Error())
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a binary (or XML) plist workflow document
func Unmarshal(data []byte) (*Document, error) {
	var root map[string]interface{}
	decoder := plist.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrDecodingFailed, err.Error())
	}

	doc := &Document{
		InputContentItemClasses: []string{},
		WorkflowTypes:           []string{},
	}

	doc.Name, _ = asString(root[keyName])
	doc.ClientRelease, _ = asString(root[keyClientRelease])

	if n, ok := asInt(root[keyMinClientVersion]); ok {
		doc.MinimumClientVersion = int(n)
	}
	doc.MinimumClientVersionString, _ = asString(root[keyMinClientVersionString])
	if n, ok := asInt(root[keyClientVersion]); ok {
		doc.ClientVersion = int(n)
	}

	if iconDict, ok := root[keyIcon].(map[string]interface{}); ok {
		if n, ok := asInt(iconDict[keyIconGlyphNumber]); ok {
			doc.Icon.GlyphNumber = n
		}
		if n, ok := asInt(iconDict[keyIconStartColor]); ok {
			doc.Icon.StartColor = uint32(n)
		}
	}

	doc.InputContentItemClasses = asStringSlice(root[keyInputContentItemClasses])
	doc.WorkflowTypes = asStringSlice(root[keyWorkflowTypes])

	actions, err := decodeActions(root[keyActions])
	if err != nil {
		return nil, err
	}
	doc.Actions = actions

	if rawQuestions, ok := root[keyImportQuestions].([]interface{}); ok {
		doc.ImportQuestions = decodeImportQuestions(rawQuestions)
	}

	return doc, nil
}

func encodeActions(actions []*Action) []interface{} {
	encoded := make([]interface{}, 0, len(actions))
	for _, action := range actions {
		params := action.Parameters.toPlist()
		if action.ChainID != "" {
			params[chainIDKey] = action.ChainID
		}
		if action.OutputLabel != "" {
			params[outputLabelKey] = action.OutputLabel
		}
		encoded = append(encoded, map[string]interface{}{
			keyActionIdentifier: action.Identifier,
			keyActionParameters: params,
		})
	}
	return encoded
}

func decodeActions(raw interface{}) ([]*Action, error) {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing action list", errors.ErrDecodingFailed)
	}

	actions := make([]*Action, 0, len(entries))
	for i, entry := range entries {
		dict, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: action %d is not a dictionary", errors.ErrDecodingFailed, i)
		}

		identifier, ok := asString(dict[keyActionIdentifier])
		if !ok {
			return nil, fmt.Errorf("%w: action %d has no identifier", errors.ErrDecodingFailed, i)
		}

		action := NewAction(identifier)
		if rawParams, ok := dict[keyActionParameters].(map[string]interface{}); ok {
			// Decoded dictionaries carry no order; sort keys for stability
			keys := make([]string, 0, len(rawParams))
			for k := range rawParams {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				switch k {
				case chainIDKey:
					action.ChainID, _ = asString(rawParams[k])
				case outputLabelKey:
					action.OutputLabel, _ = asString(rawParams[k])
				default:
					value, err := ValueFromAny(rawParams[k])
					if err != nil {
						return nil, fmt.Errorf("%w: action %d parameter %q: %s",
							errors.ErrDecodingFailed, i, k, err.Error())
					}
					action.Parameters.Set(k, value)
				}
			}
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func encodeImportQuestions(questions []ImportQuestion) []interface{} {
	encoded := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		dict := map[string]interface{}{
			keyQuestionActionIndex:  q.ActionIndex,
			keyQuestionParameterKey: q.ParameterKey,
		}
		if q.Category != "" {
			dict[keyQuestionCategory] = q.Category
		}
		if q.DefaultValue != "" {
			dict[keyQuestionDefaultValue] = q.DefaultValue
		}
		if q.Text != "" {
			dict[keyQuestionText] = q.Text
		}
		encoded = append(encoded, dict)
	}
	return encoded
}

func decodeImportQuestions(raw []interface{}) []ImportQuestion {
	questions := make([]ImportQuestion, 0, len(raw))
	for _, entry := range raw {
		dict, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		var q ImportQuestion
		if n, ok := asInt(dict[keyQuestionActionIndex]); ok {
			q.ActionIndex = int(n)
		}
		q.ParameterKey, _ = asString(dict[keyQuestionParameterKey])
		q.Category, _ = asString(dict[keyQuestionCategory])
		q.DefaultValue, _ = asString(dict[keyQuestionDefaultValue])
		q.Text, _ = asString(dict[keyQuestionText])
		questions = append(questions, q)
	}
	return questions
}

func asString(raw interface{}) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// asInt normalizes the integer representations the plist decoder produces
func asInt(raw interface{}) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asStringSlice(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
