// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package conf wraps kingpin to provide:
- flags that can also be set from environment variables with the BENCH_ prefix,
- positional arguments registered next to the flags they belong to,
- a dump of the effective configuration as a sourceable shell snippet,
- new types of flags e.g. SliceFlag and IntListFlag,
- a predefined flag for the logging level (logrus integration).

When `ParseEnv` is executed, only the environment is parsed. `ParseFlags` parses both the
command line of the process and the environment. It is recommended to run it only once, after
all packages have registered their flags, so `--help` shows the whole configuration.
*/
package conf
