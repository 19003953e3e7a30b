package chartinfo

import (
	_ "github.com/meguminbot/chartinfo/internal/codename" // Register Codename extractor
	_ "github.com/meguminbot/chartinfo/internal/psych"    // Register Psych extractor and events merger
	_ "github.com/meguminbot/chartinfo/internal/vslice"   // Register V-Slice extractor
)
