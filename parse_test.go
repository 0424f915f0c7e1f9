// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"errors"
	"testing"
)

func TestParseCompoundCapturesTailText(t *testing.T) {
	t.Parallel()

	compound := parseTestCompound(t, `<doxygen><compounddef id="c" kind="class">
		<briefdescription><para>See <ref refid="r">Ref</ref> for details.</para></briefdescription>
	</compounddef></doxygen>`)

	para := compound.Brief.Child("para")
	if para == nil {
		t.Fatal("missing paragraph node")
	}

	if para.Text != "See " {
		t.Fatalf("leading text = %q", para.Text)
	}

	ref := para.Child("ref")
	if ref == nil {
		t.Fatal("missing ref node")
	}

	if ref.Text != "Ref" || ref.Tail != " for details." {
		t.Fatalf("ref text = %q, tail = %q", ref.Text, ref.Tail)
	}
}

func TestParseCompoundSectionBuckets(t *testing.T) {
	t.Parallel()

	compound := parseTestCompound(t, `<doxygen><compounddef id="class_c" kind="class">
		<sectiondef kind="private-attrib">
			<memberdef kind="variable" id="v"><type>int</type><name>count</name></memberdef>
		</sectiondef>
		<sectiondef kind="public-func">
			<memberdef kind="function" id="f"><type>void</type><name>run</name></memberdef>
		</sectiondef>
		<sectiondef kind="related">
			<memberdef kind="function" id="x"><type>void</type><name>ignored</name></memberdef>
		</sectiondef>
	</compounddef></doxygen>`)

	if len(compound.Sections) != 6 {
		t.Fatalf("sections = %d, want 6 fixed buckets", len(compound.Sections))
	}

	byTitle := map[string][]*Member{}
	for _, section := range compound.Sections {
		byTitle[section.Title] = section.Members
	}

	if members := byTitle["Public Methods"]; len(members) != 1 || members[0].Name != "run" {
		t.Fatalf("public methods = %v", memberNames(members))
	}

	if members := byTitle["Private Attributes"]; len(members) != 1 || members[0].Name != "count" {
		t.Fatalf("private attributes = %v", memberNames(members))
	}

	for _, section := range compound.Sections {
		for _, member := range section.Members {
			if member.Name == "ignored" {
				t.Fatal("unrecognized sectiondef kind leaked into a bucket")
			}
		}
	}

	// flattened members still carry every memberdef regardless of bucket
	if len(compound.Members) != 3 {
		t.Fatalf("flattened members = %v", memberNames(compound.Members))
	}
}

func TestParseCompoundMemberFields(t *testing.T) {
	t.Parallel()

	compound := parseTestCompound(t, `<doxygen><compounddef id="class_c" kind="class">
		<sectiondef kind="public-func">
			<memberdef kind="function" id="class_c_run">
				<type>const <ref refid="class_result">Result</ref> &amp;</type>
				<name>run</name>
				<argsstring>(int x, int y=0)</argsstring>
				<param><type>int</type><declname>x</declname></param>
				<param><type>int</type><declname>y</declname><defval>0</defval></param>
				<param><type>void</type></param>
			</memberdef>
		</sectiondef>
	</compounddef></doxygen>`)

	member := compound.Sections[1].Members[0]
	if member.Name != "run" || member.ArgsString != "(int x, int y=0)" {
		t.Fatalf("member = %q %q", member.Name, member.ArgsString)
	}

	if !member.IsFunction() {
		t.Fatal("function member not recognized")
	}

	if member.Type != "const Result &" {
		t.Fatalf("type = %q", member.Type)
	}

	want := []Param{{Name: "x"}, {Name: "y", Default: "0"}}
	if len(member.Params) != len(want) {
		t.Fatalf("params = %v", member.Params)
	}

	for i, param := range member.Params {
		if param != want[i] {
			t.Fatalf("param[%d] = %v, want %v", i, param, want[i])
		}
	}
}

func TestParseCompoundIncludesAndInner(t *testing.T) {
	t.Parallel()

	compound := parseTestCompound(t, `<doxygen><compounddef id="f_8hpp" kind="file">
		<includes local="no">vector</includes>
		<includes>   </includes>
		<includes local="yes">widget.hpp</includes>
		<innergroup refid="class_widget">Widget</innergroup>
	</compounddef></doxygen>`)

	if len(compound.Includes) != 2 || compound.Includes[0] != "vector" || compound.Includes[1] != "widget.hpp" {
		t.Fatalf("includes = %v", compound.Includes)
	}

	if len(compound.Inner) != 1 || compound.Inner[0] != (InnerRef{Name: "Widget", RefID: "class_widget"}) {
		t.Fatalf("inner = %v", compound.Inner)
	}
}

func TestParseCompoundWithoutDefinition(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		`<doxygen></doxygen>`,
		`<doxygenindex><compound refid="c"/></doxygenindex>`,
		``,
	} {
		compound, err := parseCompound([]byte(input))
		if err != nil {
			t.Fatalf("parseCompound(%q): %v", input, err)
		}

		if compound != nil {
			t.Fatalf("parseCompound(%q) = %+v, want nil", input, compound)
		}
	}
}

func TestParseCompoundMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := parseCompound([]byte(`<doxygen><compounddef id=`))
	if !errors.Is(err, ErrParseXML) {
		t.Fatalf("err = %v, want ErrParseXML", err)
	}
}

func TestParseCompoundExplicitTitle(t *testing.T) {
	t.Parallel()

	compound := parseTestCompound(t, `<doxygen><compounddef id="c" kind="group">
		<title>  Utility Helpers  </title>
	</compounddef></doxygen>`)

	if compound.Title != "Utility Helpers" {
		t.Fatalf("title = %q", compound.Title)
	}
}

func parseTestCompound(t *testing.T, input string) *Compound {
	t.Helper()

	compound, err := parseCompound([]byte(input))
	if err != nil {
		t.Fatalf("parseCompound: %v", err)
	}

	if compound == nil {
		t.Fatal("parseCompound returned no compound")
	}

	return compound
}

func memberNames(members []*Member) []string {
	out := make([]string, 0, len(members))
	for _, member := range members {
		out = append(out, member.Name)
	}

	return out
}
