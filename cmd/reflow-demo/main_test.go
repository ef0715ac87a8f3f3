package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reflowkit/reflow"
)

func TestParseOptions(t *testing.T) {
	type tc struct {
		args    []string
		want    options
		wantErr bool
	}

	tests := map[string]tc{
		"defaults": {
			want: options{size: reflow.ContentSizeLarge, reflow: true, width: 40},
		},
		"all flags": {
			args: []string{"--vertical", "--no-reflow", "--sample", "2", "--width", "60", "--size", "accessibility-large"},
			want: options{
				sample:    2,
				size:      reflow.ContentSizeAccessibilityLarge,
				preferred: reflow.Vertical,
				width:     60,
			},
		},
		"missing value": {
			args:    []string{"--sample"},
			wantErr: true,
		},
		"sample out of range": {
			args:    []string{"--sample", "99"},
			wantErr: true,
		},
		"unknown size": {
			args:    []string{"--size", "huge"},
			wantErr: true,
		},
		"unknown option": {
			args:    []string{"--colour"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseOptions(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOptions() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(options{})); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunRender(t *testing.T) {
	var out bytes.Buffer
	if err := runRender([]string{"--width", "20"}, &out); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	want := []string{
		"preferred=horizontal effective=horizontal size=large width=20",
		strings.Repeat("-", 20),
		"",
		"Inbox           Edit",
		"3 unread",
		"",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRender_ReflowsLongTitle(t *testing.T) {
	var out bytes.Buffer
	if err := runRender([]string{"--sample", "2", "--width", "30"}, &out); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	first, _, _ := strings.Cut(out.String(), "\n")
	if want := "preferred=horizontal effective=vertical size=large width=30"; first != want {
		t.Errorf("first line = %q, want %q", first, want)
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := runList(&out); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Widget kinds: header\n") {
		t.Errorf("runList() output = %q", out.String())
	}
}
