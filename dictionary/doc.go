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

// Package dictionary holds the catalog of frame kinds: the shortcut key
// that inserts each kind, where each kind may be inserted, and the
// characters that trigger structural extensions such as "else".
// Dictionaries are validated when they are built, so a dictionary that
// exists never binds one key to two frame kinds in the same context.
package dictionary
