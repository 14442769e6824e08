//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor holds the structural document model: frames, the
// canvases that hold them, and the cursors between frames where new
// frames are inserted and through which focus passes.
//
// A canvas always holds one more cursor than frames, interleaved as
// cursor, frame, cursor, ..., cursor. All structural changes go through
// canvas insertion and removal, which check this invariant after every
// change and report content changes to the canvas parent.
//
// The model is single threaded. Callers that do background work must
// hand results back to the goroutine that owns the Document.
package editor
