package types

// Model is a catalog entry offered for fine-tuning.
type Model struct {
	// Stable identifier for the model.
	// example: unsloth/llama-3-8b-bnb-4bit
	ID string `json:"id" yaml:"id" toml:"id" example:"unsloth/llama-3-8b-bnb-4bit"`
	// Human-friendly name.
	// example: Llama 3 8B (4-bit)
	Name string `json:"name" yaml:"name" toml:"name" example:"Llama 3 8B (4-bit)"`
	// Optional download size.
	// example: 4.5 GB
	Size string `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty" example:"4.5 GB"`
	// Optional short description.
	// example: Fast 4-bit quantized Llama 3
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" example:"Fast 4-bit quantized Llama 3"`
}

// GPUDevice describes one accelerator reported by the backend.
type GPUDevice struct {
	// example: 0
	Index int `json:"index" example:"0"`
	// example: NVIDIA A100-SXM4-40GB
	Name string `json:"name" example:"NVIDIA A100-SXM4-40GB"`
	// example: 42.41
	MemoryTotalGB float64 `json:"memory_total_gb" example:"42.41"`
}

// GPUInfo reports accelerator availability.
type GPUInfo struct {
	Available bool        `json:"available"`
	Devices   []GPUDevice `json:"devices"`
}

// MemoryInfo reports host memory in gigabytes.
type MemoryInfo struct {
	// example: 83.48
	TotalGB float64 `json:"total_gb" example:"83.48"`
	// example: 79.1
	AvailableGB float64 `json:"available_gb" example:"79.1"`
	// example: 5.2
	PercentUsed float64 `json:"percent_used" example:"5.2"`
}

// SystemInfo is a read-only snapshot of the training host.
type SystemInfo struct {
	// example: Linux-6.1.85+-x86_64-with-glibc2.35
	Platform string `json:"platform" example:"Linux-6.1.85+-x86_64-with-glibc2.35"`
	// Reported by Python backends; empty otherwise.
	PythonVersion string     `json:"python_version,omitempty" example:"3.11.13"`
	CPUCount      int        `json:"cpu_count" example:"12"`
	Memory        MemoryInfo `json:"memory"`
	GPU           GPUInfo    `json:"gpu"`
}

// PrimaryGPU returns the first reported device, if any.
func (s SystemInfo) PrimaryGPU() (GPUDevice, bool) {
	if !s.GPU.Available || len(s.GPU.Devices) == 0 {
		return GPUDevice{}, false
	}
	return s.GPU.Devices[0], true
}
