package bidifacade

import "time"

// safeCloseTimeout bounds the browser.close round trip during teardown;
// once it elapses, process.close terminates the browser regardless
// (graceful signal, then a kill).
const safeCloseTimeout = 3 * time.Second
