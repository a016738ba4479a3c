package researcher

import "testing"

func TestStaticCatalogRegisterAndLookup(t *testing.T) {
	eng := &fakeEngine{}
	web, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}
	local, err := NewLocalResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewLocalResearcher returned error: %v", err)
	}

	catalog := NewStaticCatalog(web, local)

	tool, spec, ok := catalog.Lookup("WEB_RESEARCHER")
	if !ok {
		t.Fatalf("expected case-insensitive lookup to succeed")
	}
	if tool != web || spec.Name != "web_researcher" {
		t.Fatalf("lookup returned wrong tool: %q", spec.Name)
	}

	if _, _, ok := catalog.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss for unknown tool")
	}

	specs := catalog.Specs()
	if len(specs) != 2 || specs[0].Name != "web_researcher" || specs[1].Name != "local_researcher" {
		t.Fatalf("specs not in registration order: %v", specs)
	}
}

func TestStaticCatalogRejectsDuplicatesAndNil(t *testing.T) {
	eng := &fakeEngine{}
	web, err := NewWebResearcher(eng, ReportResearch)
	if err != nil {
		t.Fatalf("NewWebResearcher returned error: %v", err)
	}

	catalog := NewStaticCatalog()
	if err := catalog.Register(web); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := catalog.Register(web); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := catalog.Register(nil); err == nil {
		t.Fatalf("expected error for nil tool")
	}
}
