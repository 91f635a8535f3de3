// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package python

import (
	"strings"
	"testing"

	"github.com/quicktype/quicktype/internal/render"
	"github.com/quicktype/quicktype/internal/samples"
	"github.com/quicktype/quicktype/internal/typegraph"
)

func TestLanguage_Render(t *testing.T) {
	tests := []struct {
		name     string
		rootName string
		samples  []string
		wantCode []string // Expected code snippets
	}{
		{
			name:     "simple dataclass",
			rootName: "person",
			samples:  []string{`{"name": "x", "age": 3}`},
			wantCode: []string{
				"from dataclasses import dataclass",
				"@dataclass",
				"class Person:",
				"    name: str",
				"    age: int",
			},
		},
		{
			name:     "nullable gets optional default",
			rootName: "person",
			samples:  []string{`{"id": 1}`, `{"id": 2, "nick": "x"}`},
			wantCode: []string{
				"from typing import Optional",
				"    nick: Optional[str] = None",
			},
		},
		{
			name:     "snake case property names",
			rootName: "event",
			samples:  []string{`{"createdAt": "x"}`},
			wantCode: []string{
				"    created_at: str",
			},
		},
		{
			name:     "builtin shadowing is escaped",
			rootName: "entity",
			samples:  []string{`{"id": 1, "type": "x"}`},
			wantCode: []string{
				"    id_: int",
				"    type_: str",
			},
		},
		{
			name:     "nested reference is quoted",
			rootName: "order",
			samples:  []string{`{"customer": {"name": "x"}}`},
			wantCode: []string{
				"    customer: 'Customer'",
				"class Customer:",
			},
		},
		{
			name:     "mixed scalars form a union",
			rootName: "thing",
			samples:  []string{`{"v": 1}`, `{"v": "x"}`},
			wantCode: []string{
				"from typing import Union",
				"    v: Union[int, str]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := typegraph.NewGraph()
			for _, src := range tt.samples {
				v, err := samples.ParseJSON([]byte(src))
				if err != nil {
					t.Fatalf("ParseJSON() error = %v", err)
				}
				g.Fold(tt.rootName, v)
			}

			got, err := render.Generate(g, &Language{})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			gotStr := string(got)
			for _, want := range tt.wantCode {
				if !strings.Contains(gotStr, want) {
					t.Errorf("Generate() missing expected code snippet:\nwant: %q\ngot:\n%s", want, gotStr)
				}
			}
		})
	}
}

func TestLanguage_DefaultedFieldsRenderLast(t *testing.T) {
	// "a" is only present in the first sample, so it carries a None default
	// and must not precede the required "b" in the dataclass.
	g := typegraph.NewGraph()
	for _, src := range []string{`{"a": 1, "b": "x"}`, `{"b": "y"}`} {
		v, err := samples.ParseJSON([]byte(src))
		if err != nil {
			t.Fatalf("ParseJSON() error = %v", err)
		}
		g.Fold("record", v)
	}

	got, err := render.Generate(g, &Language{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	gotStr := string(got)
	required := strings.Index(gotStr, "    b: str")
	defaulted := strings.Index(gotStr, "    a: Optional[int] = None")
	if required < 0 || defaulted < 0 {
		t.Fatalf("Generate() missing expected fields:\n%s", gotStr)
	}
	if required > defaulted {
		t.Errorf("required field rendered after defaulted field:\n%s", gotStr)
	}
}
