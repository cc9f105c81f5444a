package config

// DefaultJobTemplate is a starter sbatch script for HDDM model-fitting
// jobs. The "{MODEL}" token is replaced with one model name per
// submission; every occurrence is replaced, so the token may appear in
// the job name, log paths, and command line.
//
// Tokens are literal markers, not Go template syntax, so templates stay
// editable as plain sbatch scripts.
var DefaultJobTemplate = `#!/bin/bash
#SBATCH --job-name fit-{MODEL}
#SBATCH --ntasks 1
#SBATCH --time 48:00:00
#SBATCH --error fit-{MODEL}-stderr
#SBATCH --output fit-{MODEL}-stdout

python fit_hddm.py {MODEL}
`
